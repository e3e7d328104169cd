package system

import (
	"time"

	"github.com/bzar/spacerocks/internal/component"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/data"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/world"
)

// ShipConfig is the ship handling tuning.
type ShipConfig struct {
	Thrust   float64
	TurnRate float64
	Radius   float64
}

// ShipControlSystem applies the ship's controls: steering, thrust, weapon
// selection and firing. Phase 0 (Input), after InputSystem.
type ShipControlSystem struct {
	world   *world.State
	factory *spawn.Factory
	weapons *data.WeaponTable
	cfg     ShipConfig
}

func NewShipControlSystem(ws *world.State, factory *spawn.Factory, weapons *data.WeaponTable, cfg ShipConfig) *ShipControlSystem {
	return &ShipControlSystem{world: ws, factory: factory, weapons: weapons, cfg: cfg}
}

func (s *ShipControlSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *ShipControlSystem) Update(dt time.Duration) {
	id, ship, ok := s.world.Ship()
	if !ok {
		return
	}
	body, ok := s.world.Bodies.Get(id)
	if !ok {
		return
	}
	sec := dt.Seconds()
	c := ship.Controls

	switch c.Turn {
	case component.TurnLeft:
		body.Rotation += s.cfg.TurnRate * sec
	case component.TurnRight:
		body.Rotation -= s.cfg.TurnRate * sec
	}
	if c.Throttle {
		body.Acceleration = geom.FromAngle(body.Rotation).Scale(s.cfg.Thrust)
	} else {
		body.Acceleration = geom.Vec2{}
	}

	switch {
	case c.Select >= 1 && c.Select <= component.WeaponCount:
		if w := component.Weapon(c.Select - 1); ship.WeaponLevels[w] > 0 {
			ship.Weapon = w
		}
	case c.NextWeapon:
		ship.Weapon = cycleWeapon(ship, 1)
	case c.PrevWeapon:
		ship.Weapon = cycleWeapon(ship, -1)
	}

	if ship.Invulnerability > 0 {
		ship.Invulnerability -= sec
		if ship.Invulnerability < 0 {
			ship.Invulnerability = 0
		}
	}
	if ship.Cooldown > 0 {
		ship.Cooldown -= sec
	}
	if c.Fire && ship.Cooldown <= 0 {
		if entry := s.weapons.Get(ship.Weapon); entry != nil {
			s.fire(ship, body, entry)
			ship.Cooldown = entry.Cooldown
		}
	}
}

// cycleWeapon returns the next available weapon in direction step.
func cycleWeapon(ship *component.Ship, step int) component.Weapon {
	n := component.WeaponCount
	for i := 1; i < n; i++ {
		w := component.Weapon(((int(ship.Weapon)+step*i)%n + n) % n)
		if ship.WeaponLevels[w] > 0 {
			return w
		}
	}
	return ship.Weapon
}

// fire spawns the projectiles of one trigger pull. Spread fans
// 1+2*(level-1) shots; every other weapon fires a single shot whose damage
// grows with level.
func (s *ShipControlSystem) fire(ship *component.Ship, body *component.Body, e *data.WeaponEntry) {
	level := ship.WeaponLevels[ship.Weapon]
	if level < 1 {
		level = 1
	}
	nose := body.Position.Add(geom.FromAngle(body.Rotation).Scale(s.cfg.Radius))

	shots, damage := 1, e.ShotDamage(level)
	if ship.Weapon == component.Spread {
		shots, damage = 1+2*(level-1), e.Damage
	}
	for i := 0; i < shots; i++ {
		angle := body.Rotation + float64(i-(shots-1)/2)*e.Spread
		s.factory.Projectile(spawn.Shot{
			Weapon:   ship.Weapon,
			Damage:   damage,
			Position: nose,
			Velocity: body.Velocity.Add(geom.FromAngle(angle).Scale(e.Speed)),
			Rotation: angle,
			Radius:   e.Radius,
			Length:   e.Length,
			Life:     e.Life,
		})
	}
}
