package system

import (
	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/event"
	"go.uber.org/zap"
)

// Stats are running totals gathered from delivered gameplay events.
type Stats struct {
	AsteroidsDestroyed int
	UfosDestroyed      int
	ShipsLost          int
	ShieldHits         int
	PowerupsCollected  int
	LevelsCleared      int
}

// EventLog subscribes to gameplay events, logs them and keeps Stats.
type EventLog struct {
	log   *zap.Logger
	stats Stats
}

func NewEventLog(bus *event.Bus, log *zap.Logger) *EventLog {
	l := &EventLog{log: log}
	event.Subscribe(bus, func(e event.AsteroidDestroyed) {
		l.stats.AsteroidsDestroyed++
		l.log.Debug("asteroid destroyed",
			zap.Stringer("asteroid", e.Asteroid),
			zap.Stringer("by", e.Credited),
			zap.Stringer("size", component.AsteroidSize(e.Size)),
			zap.Int("score", e.Score),
			zap.Int("fragments", e.Fragments))
	})
	event.Subscribe(bus, func(e event.UfoDestroyed) {
		l.stats.UfosDestroyed++
		l.log.Info("ufo destroyed",
			zap.Stringer("ufo", e.Ufo),
			zap.Stringer("by", e.Credited),
			zap.Int("score", e.Score),
			zap.Int("powerups", e.Powerups))
	})
	event.Subscribe(bus, func(e event.ShipDestroyed) {
		l.stats.ShipsLost++
		l.log.Info("ship lost",
			zap.Stringer("ship", e.Ship),
			zap.Stringer("cause", e.Cause),
			zap.Int("lives_left", e.LivesLeft))
	})
	event.Subscribe(bus, func(e event.ShieldAbsorbed) {
		l.stats.ShieldHits++
		l.log.Debug("shield absorbed hit", zap.Stringer("cause", e.Cause), zap.Int("shield_left", e.ShieldLeft))
	})
	event.Subscribe(bus, func(e event.PowerupCollected) {
		l.stats.PowerupsCollected++
		l.log.Info("powerup collected", zap.Stringer("kind", component.PowerupKind(e.Kind)))
	})
	event.Subscribe(bus, func(e event.LevelStarted) {
		l.log.Info("level started", zap.Int("level", e.Level), zap.Int("asteroids", e.Asteroids))
	})
	event.Subscribe(bus, func(e event.LevelCleared) {
		l.stats.LevelsCleared++
		l.log.Info("level cleared", zap.Int("level", e.Level), zap.Int("swept", e.Swept), zap.Int("score", e.Score))
	})
	event.Subscribe(bus, func(e event.GameOver) {
		l.log.Info("game over", zap.Int("level", e.Level), zap.Int("score", e.Score))
	})
	return l
}

func (l *EventLog) Stats() Stats {
	return l.stats
}
