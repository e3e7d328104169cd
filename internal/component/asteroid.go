package component

// AsteroidSize orders asteroids from smallest to largest.
type AsteroidSize int

const (
	Tiny AsteroidSize = iota
	Small
	Medium
	Large
)

// AsteroidVariants is the number of visual asteroid variants; levels cycle
// through them.
const AsteroidVariants = 12

// Smaller returns the fragment size produced when an asteroid of size s
// breaks, and false for Tiny.
func (s AsteroidSize) Smaller() (AsteroidSize, bool) {
	if s <= Tiny {
		return Tiny, false
	}
	return s - 1, true
}

func (s AsteroidSize) Radius() float64 {
	switch s {
	case Tiny:
		return 4
	case Small:
		return 8
	case Medium:
		return 16
	default:
		return 24
	}
}

// Cost is the number of Tiny asteroids s ultimately breaks into.
func (s AsteroidSize) Cost() int {
	return 1 << uint(s)
}

// Integrity is the number of damage points a fresh asteroid of size s absorbs.
func (s AsteroidSize) Integrity() int {
	return int(s)*4 + 1
}

func (s AsteroidSize) String() string {
	switch s {
	case Tiny:
		return "tiny"
	case Small:
		return "small"
	case Medium:
		return "medium"
	default:
		return "large"
	}
}

type Asteroid struct {
	Size      AsteroidSize
	Integrity int
	Variant   int
}
