package geom

import (
	"math"
	"testing"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"circles overlap", NewCircle(V(0, 0), 4), NewCircle(V(6, 0), 3), true},
		{"circles touch", NewCircle(V(0, 0), 4), NewCircle(V(7, 0), 3), true},
		{"circles apart", NewCircle(V(0, 0), 4), NewCircle(V(8, 0), 3), false},
		{"line through circle", NewLine(V(-10, 0), V(20, 0), 1), NewCircle(V(0, 3), 2.5), true},
		{"line misses circle", NewLine(V(-10, 0), V(20, 0), 1), NewCircle(V(0, 5), 2.5), false},
		{"line end near circle", NewLine(V(0, 0), V(10, 0), 1), NewCircle(V(12, 0), 1.5), true},
		{"line end far from circle", NewLine(V(0, 0), V(10, 0), 1), NewCircle(V(14, 0), 1.5), false},
		{"circle first", NewCircle(V(0, 3), 2.5), NewLine(V(-10, 0), V(20, 0), 1), true},
		{"line line", NewLine(V(0, 0), V(1, 0), 1), NewLine(V(0, 0), V(0, 1), 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := Wrap(V(401, -241), 800, 480)
	if math.Abs(got.X+399) > 1e-9 || math.Abs(got.Y-239) > 1e-9 {
		t.Fatalf("Wrap = %+v", got)
	}
	inside := V(10, 10)
	if Wrap(inside, 800, 480) != inside {
		t.Fatal("inside point moved")
	}
}

func TestFromAngle(t *testing.T) {
	up := FromAngle(0)
	if math.Abs(up.X) > 1e-9 || math.Abs(up.Y-1) > 1e-9 {
		t.Fatalf("FromAngle(0) = %+v", up)
	}
	left := FromAngle(math.Pi / 2)
	if math.Abs(left.X+1) > 1e-9 || math.Abs(left.Y) > 1e-9 {
		t.Fatalf("FromAngle(pi/2) = %+v", left)
	}
}

func TestBoundsCoversLine(t *testing.T) {
	l := NewLine(V(0, 0), V(10, 0), 1)
	c, r := l.Bounds()
	if c != V(5, 0) || r != 6 {
		t.Fatalf("Bounds = %+v %v", c, r)
	}
}
