package geom

import "math"

// Vec2 is a 2D vector in arena units (y up).
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2              { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) PerpDot(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) Perp() Vec2             { return Vec2{-v.Y, v.X} }
func (v Vec2) LenSq() float64         { return v.Dot(v) }
func (v Vec2) Len() float64           { return math.Sqrt(v.LenSq()) }

func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }
func (v Vec2) Dist(o Vec2) float64   { return v.Sub(o).Len() }

// Normalize returns the unit vector of v, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// ProjectOnto returns the projection of v on o.
func (v Vec2) ProjectOnto(o Vec2) Vec2 {
	d := o.LenSq()
	if d == 0 {
		return Vec2{}
	}
	return o.Scale(v.Dot(o) / d)
}

// FromAngle returns the unit vector for angle, measured from +Y so that a
// rotation of zero points "up" like the ship sprite.
func FromAngle(angle float64) Vec2 {
	return Vec2{0, 1}.Rotate(angle)
}

// Lerp interpolates from start to end with t clamped to [0,1].
func Lerp(start, end, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return start + (end-start)*t
}

// Wrap maps p into the toroidal arena centred on the origin.
func Wrap(p Vec2, width, height float64) Vec2 {
	hw, hh := width/2, height/2
	if p.X > hw {
		p.X -= width
	} else if p.X < -hw {
		p.X += width
	}
	if p.Y > hh {
		p.Y -= height
	} else if p.Y < -hh {
		p.Y += height
	}
	return p
}
