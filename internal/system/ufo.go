package system

import (
	"math"
	"time"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/session"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap"
)

// UfoRules supplies the per-level ufo behaviour. Implemented by the
// scripting engine.
type UfoRules interface {
	UfoDuration(level int) float64
	UfoShootDelay(level int) float64
	UfoShootAccuracy(level int) float64
}

type UfoConfig struct {
	Life       int
	Radius     float64
	LaserSpeed float64
	LaserLife  float64
}

// UfoSystem spawns a ufo whenever the score passes the next threshold,
// flies it along a sine path across the arena and fires lasers at the ship.
// A ufo that completes its path leaves the arena without reward.
// Phase 2 (Update).
type UfoSystem struct {
	world   *world.State
	sess    *session.State
	factory *spawn.Factory
	rules   UfoRules
	cfg     UfoConfig
	log     *zap.Logger
}

func NewUfoSystem(ws *world.State, sess *session.State, factory *spawn.Factory, rules UfoRules, cfg UfoConfig, log *zap.Logger) *UfoSystem {
	return &UfoSystem{world: ws, sess: sess, factory: factory, rules: rules, cfg: cfg, log: log}
}

func (s *UfoSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *UfoSystem) Update(dt time.Duration) {
	if s.sess.UfoDue() {
		id := s.spawn()
		s.log.Info("ufo incoming", zap.Stringer("ufo", id), zap.Int("next_at", s.sess.NextUfoScore))
	}

	sec := dt.Seconds()
	shipPos, haveShip := s.shipPosition()
	ecs.Each2(s.world.Ufos, s.world.Bodies, func(id ecs.EntityID, u *component.Ufo, b *component.Body) {
		if !s.world.ECS.Alive(id) {
			return
		}
		u.Time += sec
		if u.Time >= u.Duration {
			s.world.ECS.MarkForDestruction(id)
			s.log.Debug("ufo left the arena", zap.Stringer("ufo", id))
			return
		}
		b.Position = UfoPosition(u)

		u.ShootCooldown -= sec
		if u.ShootCooldown <= 0 && haveShip {
			u.ShootCooldown = u.ShootDelay
			aim := shipPos.Sub(b.Position).Normalize()
			spread := (1 - u.ShootAccuracy) * (s.sess.Rand.Float64() - 0.5) * math.Pi
			s.factory.UfoLaser(b.Position, aim.Rotate(spread).Scale(s.cfg.LaserSpeed), s.cfg.LaserLife)
		}
	})
}

func (s *UfoSystem) shipPosition() (geom.Vec2, bool) {
	id, _, ok := s.world.Ship()
	if !ok {
		return geom.Vec2{}, false
	}
	b, ok := s.world.Bodies.Get(id)
	if !ok {
		return geom.Vec2{}, false
	}
	return b.Position, true
}

// UfoPosition is where u is along its path at u.Time.
func UfoPosition(u *component.Ufo) geom.Vec2 {
	t := u.Time / u.Duration
	path := u.End.Sub(u.Start)
	base := u.Start.Add(path.Scale(t))
	offset := math.Sin(t*u.Frequency*2*math.Pi) * u.Amplitude
	return base.Add(path.Perp().Normalize().Scale(offset))
}

func (s *UfoSystem) spawn() ecs.EntityID {
	r := s.sess.Rand
	level := s.sess.Level
	hw, hh := s.world.Width/2, s.world.Height/2
	x := hw
	if r.Intn(2) == 0 {
		x = -hw
	}
	start := geom.V(x, (r.Float64()*2-1)*hh*0.8)
	delay := s.rules.UfoShootDelay(level)
	return s.factory.Ufo(component.Ufo{
		Start:         start,
		End:           start.Neg(),
		Frequency:     r.Float64() * 5,
		Amplitude:     r.Float64()*90 + 10,
		Duration:      s.rules.UfoDuration(level),
		ShootDelay:    delay,
		ShootCooldown: delay,
		ShootAccuracy: s.rules.UfoShootAccuracy(level),
		Life:          s.cfg.Life,
	}, s.cfg.Radius)
}
