package component

import "github.com/bzar/spacerocks/internal/geom"

// Ufo flies from Start to End over Duration seconds on a sine path and
// fires at the ship every ShootDelay seconds.
type Ufo struct {
	Start         geom.Vec2
	End           geom.Vec2
	Frequency     float64
	Amplitude     float64
	Duration      float64
	Time          float64
	ShootDelay    float64
	ShootCooldown float64
	ShootAccuracy float64 // 1 = perfect aim
	Life          int
}

// UfoLaser is a shot fired by a ufo.
type UfoLaser struct{}
