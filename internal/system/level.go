package system

import (
	"math"
	"time"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/core/event"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/session"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap"
)

// LevelRules supplies the level curve. Implemented by the scripting engine.
type LevelRules interface {
	LevelAsteroids(level int) int
}

// LevelConfig is the tuning LevelSystem needs for (re)starting play.
type LevelConfig struct {
	ShipRadius      float64
	Invulnerability float64
	MinSpeed        float64
	MaxSpeed        float64
}

// LevelSystem ends a level once no asteroid or ufo is alive and starts the
// next. Everything belonging to the old level is swept by its LevelScoped
// tag, whatever its kind; the ship is persistent and only repositioned.
// Phase 6 (Transition), after cleanup so the sweep starts from a flushed
// world.
type LevelSystem struct {
	world   *world.State
	sess    *session.State
	queue   *spawn.Queue
	factory *spawn.Factory
	bus     *event.Bus
	cleanup *CleanupSystem
	rules   LevelRules
	cfg     LevelConfig
	log     *zap.Logger
}

func NewLevelSystem(ws *world.State, sess *session.State, queue *spawn.Queue, factory *spawn.Factory, bus *event.Bus, cleanup *CleanupSystem, rules LevelRules, cfg LevelConfig, log *zap.Logger) *LevelSystem {
	return &LevelSystem{world: ws, sess: sess, queue: queue, factory: factory, bus: bus, cleanup: cleanup, rules: rules, cfg: cfg, log: log}
}

func (s *LevelSystem) Phase() coresys.Phase { return coresys.PhaseTransition }

func (s *LevelSystem) Update(_ time.Duration) {
	if s.sess.Phase != session.Playing || s.world.HostilesLeft() > 0 {
		return
	}
	s.Advance()
}

// Advance clears the current level and starts the next one.
func (s *LevelSystem) Advance() {
	level := s.sess.Level
	s.sess.Phase = session.LevelCleared

	swept := ecs.Sweep(s.world.ECS, s.world.LevelScoped)
	dropped := s.queue.DiscardLevel(level)
	s.cleanup.Flush()
	event.Emit(s.bus, event.LevelCleared{Level: level, Swept: swept, Score: s.sess.Score})
	s.log.Debug("level swept",
		zap.Int("level", level), zap.Int("entities", swept), zap.Int("requests_dropped", dropped))

	s.sess.AdvanceLevel()
	s.resetShip()
	s.StartLevel()
}

// NewGame discards everything, including the ship, and starts level 1.
func (s *LevelSystem) NewGame() {
	s.world.ECS.SweepAll()
	s.cleanup.Flush()
	s.queue.Reset()
	s.bus.Reset()
	s.sess.Reset()
	s.factory.Ship(geom.Vec2{}, s.cfg.ShipRadius, s.cfg.Invulnerability)
	s.StartLevel()
}

// StartLevel spawns the asteroid field of the current level. Sizes cycle
// large, medium, small, tiny; asteroids start away from the centre so the
// ship is not hit on arrival.
func (s *LevelSystem) StartLevel() {
	level := s.sess.Level
	n := s.rules.LevelAsteroids(level)
	r := s.sess.Rand
	minDist := math.Min(s.world.Width, s.world.Height) / 4
	maxDist := math.Min(s.world.Width, s.world.Height) / 2
	for i := 0; i < n; i++ {
		size := component.Large - component.AsteroidSize(i%4)
		pos := geom.FromAngle(r.Float64() * 2 * math.Pi).Scale(geom.Lerp(minDist, maxDist, r.Float64()))
		vel := geom.FromAngle(r.Float64() * 2 * math.Pi).Scale(geom.Lerp(s.cfg.MinSpeed, s.cfg.MaxSpeed, r.Float64()))
		s.factory.Asteroid(pos, vel, (r.Float64()-0.5)*2, size, level)
	}
	event.Emit(s.bus, event.LevelStarted{Level: level, Asteroids: n})
}

func (s *LevelSystem) resetShip() {
	id, ship, ok := s.world.Ship()
	if !ok {
		return
	}
	if b, ok := s.world.Bodies.Get(id); ok {
		*b = component.Body{}
	}
	ship.Invulnerability = s.cfg.Invulnerability
	ship.Cooldown = 0
}
