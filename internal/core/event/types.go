package event

import (
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/geom"
)

// Gameplay events. Emitted during resolution and transitions, readable on
// the following tick.

type AsteroidDestroyed struct {
	Asteroid  ecs.EntityID
	Credited  ecs.EntityID // projectile or ship that got the kill
	Size      int
	Position  geom.Vec2
	Score     int
	Fragments int
	Tick      uint64
}

type UfoDestroyed struct {
	Ufo      ecs.EntityID
	Credited ecs.EntityID
	Position geom.Vec2
	Score    int
	Powerups int
	Tick     uint64
}

type ShipDestroyed struct {
	Ship      ecs.EntityID
	Cause     ecs.EntityID
	Position  geom.Vec2
	LivesLeft int
	Tick      uint64
}

type ShieldAbsorbed struct {
	Ship       ecs.EntityID
	Cause      ecs.EntityID
	ShieldLeft int
	Tick       uint64
}

type PowerupCollected struct {
	Ship    ecs.EntityID
	Powerup ecs.EntityID
	Kind    int
	Tick    uint64
}

type LevelStarted struct {
	Level     int
	Asteroids int
}

type LevelCleared struct {
	Level int
	Swept int
	Score int
}

type GameOver struct {
	Level int
	Score int
}
