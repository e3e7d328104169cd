// Package collision turns overlapping bodies into collision events and
// resolves those events into lifecycle transitions, score and spawn
// requests. Detection is read-only; resolution is the only writer.
package collision

import (
	"fmt"

	"github.com/bzar/spacerocks/internal/core/ecs"
)

// Kind is the pairing of a collision event. A is always the "actor"
// (projectile, rammer, laser, powerup) and B the entity it touched.
type Kind uint8

const (
	WeaponAsteroid   Kind = iota // A projectile, B asteroid
	WeaponUfo                    // A projectile, B ufo
	AsteroidShip                 // A asteroid, B ship
	AsteroidAsteroid             // A, B asteroids; A earlier in store order
	UfoShip                      // A ufo, B ship
	PowerupShip                  // A powerup, B ship
	LaserShip                    // A ufo laser, B ship
)

func (k Kind) String() string {
	switch k {
	case WeaponAsteroid:
		return "weapon_asteroid"
	case WeaponUfo:
		return "weapon_ufo"
	case AsteroidShip:
		return "asteroid_ship"
	case AsteroidAsteroid:
		return "asteroid_asteroid"
	case UfoShip:
		return "ufo_ship"
	case PowerupShip:
		return "powerup_ship"
	case LaserShip:
		return "laser_ship"
	}
	return "unknown"
}

// Event is one detected overlap. Seq is the detection order within Tick.
type Event struct {
	Kind Kind
	A    ecs.EntityID
	B    ecs.EntityID
	Tick uint64
	Seq  int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%s,%s)@%d#%d", e.Kind, e.A, e.B, e.Tick, e.Seq)
}
