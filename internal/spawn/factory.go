package spawn

import (
	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/world"
)

// PowerupRadius is the pickup radius of a powerup.
const PowerupRadius = 16

// Factory creates fully assembled entities. Everything except the ship is
// tagged LevelScoped with the level returned by levelFn, so a level
// transition can sweep it by tag.
type Factory struct {
	w       *world.State
	levelFn func() int
}

func NewFactory(w *world.State, levelFn func() int) *Factory {
	return &Factory{w: w, levelFn: levelFn}
}

func (f *Factory) scoped(id ecs.EntityID) {
	f.w.LevelScoped.Set(id, &component.LevelScoped{Level: f.levelFn()})
}

func (f *Factory) body(id ecs.EntityID, b component.Body, shape geom.Shape, wrap bool) {
	f.w.Bodies.Set(id, &b)
	f.w.Colliders.Set(id, &component.Collider{Shape: shape})
	if wrap {
		f.w.Wrapping.Set(id, &component.Wrapping{})
	}
}

// Apply creates the entity described by r. Requests from another level are
// stale and return false.
func (f *Factory) Apply(r Request) (ecs.EntityID, bool) {
	if r.Level != f.levelFn() {
		return 0, false
	}
	switch r.Kind {
	case KindAsteroid:
		return f.Asteroid(r.Position, r.Velocity, r.Spin, r.Size, r.Variant), true
	case KindPowerup:
		return f.Powerup(r.Position, r.Velocity, r.Powerup, r.Life), true
	case KindExplosion:
		return f.Explosion(r.Position, r.Radius, r.Life), true
	}
	return 0, false
}

func (f *Factory) Asteroid(pos, vel geom.Vec2, spin float64, size component.AsteroidSize, variant int) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	f.body(id, component.Body{Position: pos, Velocity: vel, Spin: spin},
		geom.NewCircle(geom.Vec2{}, size.Radius()), true)
	f.w.Asteroids.Set(id, &component.Asteroid{
		Size:      size,
		Integrity: size.Integrity(),
		Variant:   variant % component.AsteroidVariants,
	})
	f.scoped(id)
	return id
}

func (f *Factory) Powerup(pos, vel geom.Vec2, kind component.PowerupKind, life float64) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	f.body(id, component.Body{Position: pos, Velocity: vel},
		geom.NewCircle(geom.Vec2{}, PowerupRadius), true)
	f.w.Powerups.Set(id, &component.Powerup{Kind: kind})
	f.w.Expiring.Set(id, &component.Expiring{Life: life})
	f.scoped(id)
	return id
}

// Explosion has no collider; it only marks where something died.
func (f *Factory) Explosion(pos geom.Vec2, radius, life float64) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	f.w.Bodies.Set(id, &component.Body{Position: pos})
	f.w.Explosions.Set(id, &component.Explosion{Radius: radius})
	f.w.Expiring.Set(id, &component.Expiring{Life: life})
	f.scoped(id)
	return id
}

// Shot describes one ship projectile.
type Shot struct {
	Weapon   component.Weapon
	Damage   int
	Position geom.Vec2
	Velocity geom.Vec2
	Rotation float64
	Radius   float64
	Length   float64 // > 0 for beams
	Life     float64
}

func (f *Factory) Projectile(s Shot) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	shape := geom.NewCircle(geom.Vec2{}, s.Radius)
	if s.Length > 0 {
		shape = geom.NewLine(geom.Vec2{}, geom.V(0, s.Length), s.Radius)
	}
	f.body(id, component.Body{Position: s.Position, Velocity: s.Velocity, Rotation: s.Rotation},
		shape, s.Length == 0)
	f.w.Projectiles.Set(id, &component.Projectile{Weapon: s.Weapon, Damage: s.Damage})
	f.w.Expiring.Set(id, &component.Expiring{Life: s.Life})
	f.scoped(id)
	return id
}

func (f *Factory) UfoLaser(pos, vel geom.Vec2, life float64) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	f.body(id, component.Body{Position: pos, Velocity: vel}, geom.NewCircle(geom.Vec2{}, 1), true)
	f.w.UfoLasers.Set(id, &component.UfoLaser{})
	f.w.Expiring.Set(id, &component.Expiring{Life: life})
	f.scoped(id)
	return id
}

// Ufo does not wrap: it despawns at the end of its path.
func (f *Factory) Ufo(u component.Ufo, radius float64) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	f.body(id, component.Body{Position: u.Start}, geom.NewCircle(geom.Vec2{}, radius), false)
	f.w.Ufos.Set(id, &u)
	f.scoped(id)
	return id
}

// Ship creates the player ship. It is persistent: not level scoped.
func (f *Factory) Ship(pos geom.Vec2, radius, invulnerability float64) ecs.EntityID {
	id := f.w.ECS.CreateEntity()
	f.body(id, component.Body{Position: pos}, geom.NewCircle(geom.Vec2{}, radius), true)
	ship := &component.Ship{Weapon: component.Rapid, Invulnerability: invulnerability}
	ship.WeaponLevels[component.Rapid] = 1
	f.w.Ships.Set(id, ship)
	return id
}
