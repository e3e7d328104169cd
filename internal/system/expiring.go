package system

import (
	"time"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap"
)

// ExpiringSystem counts down Expiring lifetimes and queues the expired for
// destruction. Phase 2 (Update).
type ExpiringSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewExpiringSystem(ws *world.State, log *zap.Logger) *ExpiringSystem {
	return &ExpiringSystem{world: ws, log: log}
}

func (s *ExpiringSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ExpiringSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	s.world.Expiring.Each(func(id ecs.EntityID, e *component.Expiring) {
		e.Life -= sec
		if e.Life < 0 && s.world.ECS.MarkForDestruction(id) {
			s.log.Debug("entity expired", zap.Stringer("entity", id))
		}
	})
}
