package world

import (
	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
)

// State holds the ECS world and every component store of the game.
// Accessed only from the game loop goroutine, so no locks are needed.
type State struct {
	ECS *ecs.World

	Bodies      *ecs.Store[component.Body]
	Colliders   *ecs.Store[component.Collider]
	Wrapping    *ecs.Store[component.Wrapping]
	Expiring    *ecs.Store[component.Expiring]
	LevelScoped *ecs.Store[component.LevelScoped]
	Asteroids   *ecs.Store[component.Asteroid]
	Ufos        *ecs.Store[component.Ufo]
	UfoLasers   *ecs.Store[component.UfoLaser]
	Ships       *ecs.Store[component.Ship]
	Projectiles *ecs.Store[component.Projectile]
	Powerups    *ecs.Store[component.Powerup]
	Explosions  *ecs.Store[component.Explosion]

	// Width and Height of the toroidal arena, centred on the origin.
	Width  float64
	Height float64
}

func NewState(width, height float64) *State {
	s := &State{
		ECS:         ecs.NewWorld(),
		Bodies:      ecs.NewStore[component.Body](),
		Colliders:   ecs.NewStore[component.Collider](),
		Wrapping:    ecs.NewStore[component.Wrapping](),
		Expiring:    ecs.NewStore[component.Expiring](),
		LevelScoped: ecs.NewStore[component.LevelScoped](),
		Asteroids:   ecs.NewStore[component.Asteroid](),
		Ufos:        ecs.NewStore[component.Ufo](),
		UfoLasers:   ecs.NewStore[component.UfoLaser](),
		Ships:       ecs.NewStore[component.Ship](),
		Projectiles: ecs.NewStore[component.Projectile](),
		Powerups:    ecs.NewStore[component.Powerup](),
		Explosions:  ecs.NewStore[component.Explosion](),
		Width:       width,
		Height:      height,
	}
	reg := s.ECS.Registry()
	reg.Register(s.Bodies)
	reg.Register(s.Colliders)
	reg.Register(s.Wrapping)
	reg.Register(s.Expiring)
	reg.Register(s.LevelScoped)
	reg.Register(s.Asteroids)
	reg.Register(s.Ufos)
	reg.Register(s.UfoLasers)
	reg.Register(s.Ships)
	reg.Register(s.Projectiles)
	reg.Register(s.Powerups)
	reg.Register(s.Explosions)
	return s
}

// Ship returns the live player ship, if any.
func (s *State) Ship() (ecs.EntityID, *component.Ship, bool) {
	for _, id := range s.Ships.IDs() {
		if !s.ECS.Alive(id) {
			continue
		}
		ship, _ := s.Ships.Get(id)
		return id, ship, true
	}
	return 0, nil, false
}

// AliveCount counts entities of a store that are still Alive this tick.
func AliveCount[T any](s *State, store *ecs.Store[T]) int {
	n := 0
	for _, id := range store.IDs() {
		if s.ECS.Alive(id) {
			n++
		}
	}
	return n
}

// HostilesLeft reports how many asteroids and ufos are still alive. A level
// is cleared when this reaches zero.
func (s *State) HostilesLeft() int {
	return AliveCount(s, s.Asteroids) + AliveCount(s, s.Ufos)
}
