package game

import (
	"math"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/world"
)

// aimTolerance is how far off target (radians) the autopilot still fires.
const aimTolerance = 0.15

// Autopilot steers the ship toward the nearest asteroid or ufo and fires
// when roughly on target. Used by the headless driver in place of a player.
func Autopilot(w *world.State) component.Controls {
	id, ship, ok := w.Ship()
	if !ok {
		return component.Controls{}
	}
	body, ok := w.Bodies.Get(id)
	if !ok {
		return component.Controls{}
	}
	target, ok := nearestHostile(w, body.Position)
	if !ok {
		return component.Controls{}
	}

	c := component.Controls{}
	// prefer the strongest weapon collected so far
	best := ship.Weapon
	for wpn := component.Weapon(0); int(wpn) < component.WeaponCount; wpn++ {
		if ship.WeaponLevels[wpn] > ship.WeaponLevels[best] {
			best = wpn
		}
	}
	if best != ship.Weapon {
		c.Select = int(best) + 1
	}

	to := target.Sub(body.Position)
	want := math.Atan2(-to.X, to.Y) // angle from +Y, counter-clockwise
	diff := math.Remainder(want-body.Rotation, 2*math.Pi)
	switch {
	case diff > aimTolerance:
		c.Turn = component.TurnLeft
	case diff < -aimTolerance:
		c.Turn = component.TurnRight
	}
	c.Fire = math.Abs(diff) <= aimTolerance
	c.Throttle = to.Len() > w.Height/2 && body.Velocity.Len() < 40
	return c
}

func nearestHostile(w *world.State, from geom.Vec2) (geom.Vec2, bool) {
	best, found := 0.0, false
	var at geom.Vec2
	consider := func(ids []ecs.EntityID) {
		for _, id := range ids {
			if !w.ECS.Alive(id) {
				continue
			}
			b, ok := w.Bodies.Get(id)
			if !ok {
				continue
			}
			if d := b.Position.DistSq(from); !found || d < best {
				best, at, found = d, b.Position, true
			}
		}
	}
	consider(w.Asteroids.IDs())
	consider(w.Ufos.IDs())
	return at, found
}
