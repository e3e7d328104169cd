// Package game wires the world, session and systems into one steppable
// simulation. A host drives it by calling Step once per frame.
package game

import (
	"time"

	"github.com/bzar/spacerocks/internal/collision"
	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/config"
	"github.com/bzar/spacerocks/internal/core/event"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/data"
	"github.com/bzar/spacerocks/internal/session"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/system"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap"
)

// Rules is everything the simulation asks the scripting layer.
type Rules interface {
	collision.Rules
	system.LevelRules
	system.UfoRules
}

// Game owns one running session. Not safe for concurrent use; call Step from
// a single goroutine.
type Game struct {
	World   *world.State
	Session *session.State
	Bus     *event.Bus

	queue     *spawn.Queue
	factory   *spawn.Factory
	runner    *coresys.Runner
	input     chan component.Controls
	level     *system.LevelSystem
	collision *system.CollisionSystem
	cleanup   *system.CleanupSystem
	events    *system.EventLog
	log       *zap.Logger
}

func New(cfg *config.Config, rules Rules, weapons *data.WeaponTable, drops *data.PowerupTable, log *zap.Logger) *Game {
	ws := world.NewState(cfg.Game.Width, cfg.Game.Height)
	sess := session.New(session.Config{
		StartLives:     cfg.Game.StartLives,
		MinUfoInterval: cfg.Ufo.MinScoreInterval,
		MaxUfoInterval: cfg.Ufo.MaxScoreInterval,
		Seed:           cfg.Game.Seed,
	})
	bus := event.NewBus()
	queue := spawn.NewQueue()
	factory := spawn.NewFactory(ws, func() int { return sess.Level })

	g := &Game{
		World:   ws,
		Session: sess,
		Bus:     bus,
		queue:   queue,
		factory: factory,
		runner:  coresys.NewRunner(),
		input:   make(chan component.Controls, 16),
		log:     log,
	}

	resolver := collision.NewResolver(ws, queue, bus, rules, drops, collision.Config{
		AsteroidFragments: cfg.Rewards.AsteroidFragments,
		PowerupsPerUfo:    cfg.Rewards.PowerupsPerUfo,
		FragmentSpeed:     cfg.Rewards.FragmentSpeed,
		PowerupLife:       cfg.Rewards.PowerupLife,
		PowerupSpeedMin:   cfg.Rewards.PowerupSpeedMin,
		PowerupSpeedMax:   cfg.Rewards.PowerupSpeedMax,
		ExplosionLife:     cfg.Rewards.ExplosionLife,
		RespawnDelay:      cfg.Ship.RespawnDelay,
		MaxShield:         cfg.Ship.MaxShield,
		LaserKnockback:    0.1,
	}, log.Named("collision"))

	g.events = system.NewEventLog(bus, log.Named("events"))
	g.collision = system.NewCollisionSystem(sess, collision.NewDetector(ws), resolver, log.Named("collision"))
	g.cleanup = system.NewCleanupSystem(ws.ECS)
	g.level = system.NewLevelSystem(ws, sess, queue, factory, bus, g.cleanup, rules, system.LevelConfig{
		ShipRadius:      cfg.Ship.Radius,
		Invulnerability: cfg.Ship.Invulnerability,
		MinSpeed:        20,
		MaxSpeed:        50,
	}, log.Named("level"))

	// Registration order is the in-phase order.
	g.runner.Register(system.NewInputSystem(ws, g.input))
	g.runner.Register(system.NewShipControlSystem(ws, factory, weapons, system.ShipConfig{
		Thrust:   cfg.Ship.Thrust,
		TurnRate: cfg.Ship.TurnRate,
		Radius:   cfg.Ship.Radius,
	}))
	g.runner.Register(system.NewEventDispatchSystem(bus))
	g.runner.Register(system.NewMovementSystem(ws))
	g.runner.Register(system.NewExpiringSystem(ws, log.Named("expiring")))
	g.runner.Register(system.NewUfoSystem(ws, sess, factory, rules, system.UfoConfig{
		Life:       cfg.Ufo.Life,
		Radius:     cfg.Ufo.Radius,
		LaserSpeed: cfg.Ufo.LaserSpeed,
		LaserLife:  cfg.Ufo.LaserLife,
	}, log.Named("ufo")))
	g.runner.Register(system.NewRespawnSystem(ws, sess, factory, cfg.Ship.Radius, cfg.Ship.Invulnerability, log.Named("respawn")))
	g.runner.Register(g.collision)
	g.runner.Register(system.NewSpawnSystem(queue, factory, log.Named("spawn")))
	g.runner.Register(g.cleanup)
	g.runner.Register(g.level)

	g.level.NewGame()
	return g
}

// Step queues the host's controls and advances the simulation one tick.
func (g *Game) Step(c component.Controls, dt time.Duration) {
	select {
	case g.input <- c:
	default:
		g.log.Warn("input queue full, controls dropped", zap.Uint64("tick", g.Session.Tick))
	}
	g.Session.Tick++
	g.runner.Tick(dt)
}

// Finish delivers the events emitted by the last tick. A host calls it once
// it stops stepping, so the event log and Stats include the final tick.
func (g *Game) Finish() {
	g.Bus.SwapBuffers()
	g.Bus.DispatchAll()
}

// NewGame restarts from level 1 with a fresh ship.
func (g *Game) NewGame() {
	g.level.NewGame()
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.Session.Phase == session.GameOver
}

// HUD renders the status line for the current state.
func (g *Game) HUD() string {
	_, ship, _ := g.World.Ship()
	return g.Session.HUD(ship)
}

// LastReport returns the collision resolution summary of the last tick.
func (g *Game) LastReport() collision.Report {
	return g.collision.LastReport()
}

func (g *Game) Stats() system.Stats {
	return g.events.Stats()
}

// Despawned is the number of entities removed since the game was created.
func (g *Game) Despawned() int {
	return g.cleanup.Destroyed()
}
