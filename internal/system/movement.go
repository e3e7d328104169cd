package system

import (
	"time"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/world"
)

// MovementSystem integrates bodies and wraps the ones that wrap.
// Phase 2 (Update).
type MovementSystem struct {
	world *world.State
}

func NewMovementSystem(ws *world.State) *MovementSystem {
	return &MovementSystem{world: ws}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	w := s.world
	w.Bodies.Each(func(id ecs.EntityID, b *component.Body) {
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(sec))
		b.Position = b.Position.Add(b.Velocity.Scale(sec))
		b.Rotation += b.Spin * sec
		if w.Wrapping.Has(id) {
			b.Position = geom.Wrap(b.Position, w.Width, w.Height)
		}
	})
}
