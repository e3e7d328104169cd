package geom

// ShapeKind selects the collision primitive.
type ShapeKind uint8

const (
	Circle ShapeKind = iota
	Line
)

// Shape is a collision primitive in world space. Circles use Center and
// Radius; lines run from Center to Center+Delta with half-width Radius.
type Shape struct {
	Kind   ShapeKind
	Center Vec2
	Delta  Vec2
	Radius float64
}

func NewCircle(center Vec2, radius float64) Shape {
	return Shape{Kind: Circle, Center: center, Radius: radius}
}

func NewLine(base, delta Vec2, width float64) Shape {
	return Shape{Kind: Line, Center: base, Delta: delta, Radius: width}
}

// Intersects reports whether s and o overlap. Line-line is not supported
// and reports false.
func (s Shape) Intersects(o Shape) bool {
	switch {
	case s.Kind == Circle && o.Kind == Circle:
		r := s.Radius + o.Radius
		return s.Center.DistSq(o.Center) <= r*r
	case s.Kind == Circle && o.Kind == Line:
		return circleLine(s, o)
	case s.Kind == Line && o.Kind == Circle:
		return circleLine(o, s)
	}
	return false
}

func circleLine(c, l Shape) bool {
	r := c.Radius + l.Radius
	if l.Delta.LenSq() == 0 {
		return c.Center.DistSq(l.Center) <= r*r
	}
	norm := l.Delta.Perp().Normalize()
	a := c.Center.Sub(l.Center)
	b := a.Sub(l.Delta)
	if norm.PerpDot(a)*norm.PerpDot(b) < 0 {
		// centre projects inside the segment
		return a.ProjectOnto(norm).LenSq() < r*r
	}
	if a.LenSq() < b.LenSq() {
		return a.LenSq() <= r*r
	}
	return b.LenSq() <= r*r
}

// Bounds returns the centre and radius of a circle enclosing s. Used by the
// broad phase.
func (s Shape) Bounds() (Vec2, float64) {
	if s.Kind == Circle {
		return s.Center, s.Radius
	}
	half := s.Delta.Scale(0.5)
	return s.Center.Add(half), half.Len() + s.Radius
}

// Translate returns s moved by d.
func (s Shape) Translate(d Vec2) Shape {
	s.Center = s.Center.Add(d)
	return s
}
