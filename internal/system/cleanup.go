package system

import (
	"time"

	"github.com/bzar/spacerocks/internal/core/ecs"
	coresys "github.com/bzar/spacerocks/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end,
// moving every PendingDespawn entity to Despawned. Phase 5 (Cleanup).
type CleanupSystem struct {
	world     *ecs.World
	destroyed int
}

func NewCleanupSystem(world *ecs.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.Flush()
}

// Flush despawns everything pending now. Used by systems that must start
// from a flushed world mid-tick.
func (s *CleanupSystem) Flush() int {
	n := s.world.FlushDestroyQueue()
	s.destroyed += n
	return n
}

// Destroyed returns the total number of entities despawned so far.
func (s *CleanupSystem) Destroyed() int {
	return s.destroyed
}
