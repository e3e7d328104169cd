package system

import (
	"time"

	"github.com/bzar/spacerocks/internal/collision"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/session"
	"go.uber.org/zap"
)

// CollisionSystem runs detection and then resolution. Detection sees the
// world as it was after Update; only the resolver changes lifecycle.
// Phase 3 (Collision).
type CollisionSystem struct {
	sess     *session.State
	detector *collision.Detector
	resolver *collision.Resolver
	last     collision.Report
	log      *zap.Logger
}

func NewCollisionSystem(sess *session.State, detector *collision.Detector, resolver *collision.Resolver, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{sess: sess, detector: detector, resolver: resolver, log: log}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ time.Duration) {
	if s.sess.Phase == session.GameOver {
		s.last = collision.Report{Tick: s.sess.Tick}
		return
	}
	events := s.detector.Detect(s.sess.Tick)
	s.last = s.resolver.Resolve(events, s.sess)
	if s.last.Duplicates > 0 || s.last.Stale > 0 {
		s.log.Debug("collision events dropped",
			zap.Uint64("tick", s.sess.Tick),
			zap.Int("events", s.last.Events),
			zap.Int("duplicates", s.last.Duplicates),
			zap.Int("stale", s.last.Stale))
	}
}

// LastReport returns the resolution summary of the most recent tick.
func (s *CollisionSystem) LastReport() collision.Report {
	return s.last
}
