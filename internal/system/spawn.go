package system

import (
	"time"

	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/spawn"
	"go.uber.org/zap"
)

// SpawnSystem applies the spawn requests queued during resolution.
// Phase 4 (Spawn).
type SpawnSystem struct {
	queue   *spawn.Queue
	factory *spawn.Factory
	log     *zap.Logger
}

func NewSpawnSystem(queue *spawn.Queue, factory *spawn.Factory, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{queue: queue, factory: factory, log: log}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(_ time.Duration) {
	for _, r := range s.queue.Drain() {
		if _, ok := s.factory.Apply(r); !ok {
			s.log.Debug("spawn request dropped",
				zap.Stringer("kind", r.Kind), zap.Stringer("cause", r.Cause), zap.Int("level", r.Level))
		}
	}
}
