package system

import (
	"time"

	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/session"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap"
)

// RespawnSystem brings the ship back at the arena centre once the respawn
// countdown started by a ship loss runs out. The new ship is briefly
// invulnerable. Phase 2 (Update).
type RespawnSystem struct {
	world           *world.State
	sess            *session.State
	factory         *spawn.Factory
	radius          float64
	invulnerability float64
	log             *zap.Logger
}

func NewRespawnSystem(ws *world.State, sess *session.State, factory *spawn.Factory, radius, invulnerability float64, log *zap.Logger) *RespawnSystem {
	return &RespawnSystem{world: ws, sess: sess, factory: factory, radius: radius, invulnerability: invulnerability, log: log}
}

func (s *RespawnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *RespawnSystem) Update(dt time.Duration) {
	if !s.sess.RespawnPending() || s.sess.Phase == session.GameOver {
		return
	}
	s.sess.RespawnIn -= dt.Seconds()
	if s.sess.RespawnIn > 0 {
		return
	}
	s.sess.RespawnIn = -1
	if _, _, ok := s.world.Ship(); ok {
		return
	}
	id := s.factory.Ship(geom.Vec2{}, s.radius, s.invulnerability)
	s.log.Info("ship respawned", zap.Stringer("ship", id), zap.Int("lives", s.sess.Lives))
}
