package component

import "github.com/bzar/spacerocks/internal/geom"

// Body is the kinematic state of anything that moves through the arena.
// Rotation is in radians, zero pointing up.
type Body struct {
	Position     geom.Vec2
	Velocity     geom.Vec2
	Acceleration geom.Vec2
	Rotation     float64
	Spin         float64 // radians per second
}

// Collider is a collision shape in body-local space; the detector
// rotates line shapes by Body.Rotation and translates by Body.Position.
type Collider struct {
	Shape geom.Shape
}

// Wrapping marks bodies that re-enter on the opposite arena edge.
type Wrapping struct{}

// Expiring despawns its entity once Life (seconds) drops below zero.
type Expiring struct {
	Life float64
}

// LevelScoped marks an entity as belonging to the level it was spawned in.
// Everything carrying it is swept on level transition.
type LevelScoped struct {
	Level int
}

// Explosion is a short-lived visual marker left where something died.
type Explosion struct {
	Radius float64
}
