package system

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/core/event"
	"github.com/bzar/spacerocks/internal/data"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/session"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap/zaptest"
)

type testRules struct{ asteroids int }

func (r testRules) LevelAsteroids(int) int     { return r.asteroids }
func (testRules) UfoDuration(int) float64      { return 4 }
func (testRules) UfoShootDelay(int) float64    { return 0.5 }
func (testRules) UfoShootAccuracy(int) float64 { return 1 }

type env struct {
	w       *world.State
	sess    *session.State
	queue   *spawn.Queue
	bus     *event.Bus
	factory *spawn.Factory
}

func newEnv() *env {
	e := &env{
		w:     world.NewState(800, 480),
		sess:  session.New(session.Config{StartLives: 3, MinUfoInterval: 1000, MaxUfoInterval: 1000, Seed: 5}),
		queue: spawn.NewQueue(),
		bus:   event.NewBus(),
	}
	e.factory = spawn.NewFactory(e.w, func() int { return e.sess.Level })
	return e
}

const tick = 100 * time.Millisecond

func TestMovementWraps(t *testing.T) {
	e := newEnv()
	id := e.factory.Asteroid(geom.V(395, 0), geom.V(100, 0), 1, component.Small, 0)
	ufo := e.factory.Ufo(component.Ufo{Start: geom.V(395, 0), End: geom.V(-395, 0), Duration: 5}, 16)
	ub, _ := e.w.Bodies.Get(ufo)
	ub.Velocity = geom.V(100, 0)

	NewMovementSystem(e.w).Update(tick)
	b, _ := e.w.Bodies.Get(id)
	if math.Abs(b.Position.X-(-395)) > 1e-9 || b.Rotation != 0.1 {
		t.Errorf("asteroid body = %+v", b)
	}
	if ub.Position.X != 405 {
		t.Errorf("ufo should not wrap, x = %v", ub.Position.X)
	}
}

func TestExpiringMarksOnce(t *testing.T) {
	e := newEnv()
	id := e.factory.Explosion(geom.Vec2{}, 8, 0.15)
	sys := NewExpiringSystem(e.w, zaptest.NewLogger(t))

	sys.Update(tick)
	if !e.w.ECS.Alive(id) {
		t.Fatal("expired too early")
	}
	sys.Update(tick)
	sys.Update(tick)
	if e.w.ECS.State(id) != ecs.PendingDespawn || e.w.ECS.Pending() != 1 {
		t.Fatalf("state = %s pending = %d", e.w.ECS.State(id), e.w.ECS.Pending())
	}
}

func TestInputMergesQueuedControls(t *testing.T) {
	e := newEnv()
	shipID := e.factory.Ship(geom.Vec2{}, 12, 0)
	ship, _ := e.w.Ships.Get(shipID)
	in := make(chan component.Controls, 4)
	sys := NewInputSystem(e.w, in)

	in <- component.Controls{Fire: true, Turn: component.TurnLeft}
	in <- component.Controls{Throttle: true}
	sys.Update(tick)
	if !ship.Controls.Fire || !ship.Controls.Throttle || ship.Controls.Turn != component.TurnNone {
		t.Fatalf("controls = %+v", ship.Controls)
	}

	in <- component.Controls{NextWeapon: true, Throttle: true}
	sys.Update(tick)
	sys.Update(tick)
	if ship.Controls.NextWeapon || !ship.Controls.Throttle {
		t.Fatalf("held controls = %+v", ship.Controls)
	}
}

func loadWeapons(t *testing.T) *data.WeaponTable {
	t.Helper()
	tbl, err := data.LoadWeaponTable(filepath.Join("..", "..", "data", "yaml", "weapons.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestShipFiresSpreadFan(t *testing.T) {
	e := newEnv()
	shipID := e.factory.Ship(geom.Vec2{}, 12, 0)
	ship, _ := e.w.Ships.Get(shipID)
	ship.WeaponLevels[component.Spread] = 3
	sys := NewShipControlSystem(e.w, e.factory, loadWeapons(t), ShipConfig{Thrust: 50, TurnRate: 3, Radius: 12})

	ship.Controls = component.Controls{Select: 2, Fire: true}
	sys.Update(tick)
	if ship.Weapon != component.Spread {
		t.Fatalf("weapon = %s", ship.Weapon)
	}
	if n := e.w.Projectiles.Len(); n != 5 {
		t.Fatalf("spread level 3 fired %d shots, want 5", n)
	}

	// cooldown holds the next shot back
	sys.Update(tick)
	if n := e.w.Projectiles.Len(); n != 5 {
		t.Errorf("fired during cooldown: %d", n)
	}
}

func TestShipSteeringAndWeaponCycle(t *testing.T) {
	e := newEnv()
	shipID := e.factory.Ship(geom.Vec2{}, 12, 2)
	ship, _ := e.w.Ships.Get(shipID)
	body, _ := e.w.Bodies.Get(shipID)
	ship.WeaponLevels[component.Plasma] = 1
	sys := NewShipControlSystem(e.w, e.factory, loadWeapons(t), ShipConfig{Thrust: 50, TurnRate: 3, Radius: 12})

	ship.Controls = component.Controls{Turn: component.TurnLeft, Throttle: true, NextWeapon: true}
	sys.Update(tick)
	if math.Abs(body.Rotation-0.3) > 1e-9 {
		t.Errorf("rotation = %v", body.Rotation)
	}
	if body.Acceleration.Len() < 49.9 {
		t.Errorf("acceleration = %+v", body.Acceleration)
	}
	if ship.Weapon != component.Plasma {
		t.Errorf("next weapon = %s, want plasma (only other available)", ship.Weapon)
	}
	if math.Abs(ship.Invulnerability-1.9) > 1e-9 {
		t.Errorf("invulnerability = %v", ship.Invulnerability)
	}

	// selecting an unavailable weapon is ignored
	ship.Controls = component.Controls{Select: 3}
	sys.Update(tick)
	if ship.Weapon != component.Plasma {
		t.Errorf("selected unavailable weapon: %s", ship.Weapon)
	}
}

func TestUfoSpawnsFliesAndLeaves(t *testing.T) {
	e := newEnv()
	e.factory.Ship(geom.V(0, -100), 12, 0)
	sys := NewUfoSystem(e.w, e.sess, e.factory, testRules{}, UfoConfig{Life: 20, Radius: 16, LaserSpeed: 500, LaserLife: 2}, zaptest.NewLogger(t))

	sys.Update(tick)
	if e.w.Ufos.Len() != 0 {
		t.Fatal("ufo spawned below threshold")
	}
	e.sess.AddScore(e.sess.NextUfoScore)
	sys.Update(tick)
	if e.w.Ufos.Len() != 1 {
		t.Fatalf("ufos = %d", e.w.Ufos.Len())
	}
	id := e.w.Ufos.IDs()[0]
	u, _ := e.w.Ufos.Get(id)
	if u.End != u.Start.Neg() || u.Duration != 4 || u.Life != 20 {
		t.Errorf("ufo = %+v", u)
	}
	if tag, ok := e.w.LevelScoped.Get(id); !ok || tag.Level != 1 {
		t.Error("ufo not level scoped")
	}

	for i := 0; i < 10; i++ {
		sys.Update(tick)
	}
	if e.w.UfoLasers.Len() == 0 {
		t.Error("ufo never fired")
	}
	for i := 0; i < 40; i++ {
		sys.Update(tick)
	}
	if e.w.ECS.State(id) != ecs.PendingDespawn {
		t.Errorf("ufo state after its path = %s", e.w.ECS.State(id))
	}
}

func TestUfoPath(t *testing.T) {
	u := &component.Ufo{Start: geom.V(-400, 0), End: geom.V(400, 0), Frequency: 1, Amplitude: 50, Duration: 4}
	u.Time = 1 // quarter way: sine peak
	p := UfoPosition(u)
	if math.Abs(p.X-(-200)) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Errorf("position = %+v", p)
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	e := newEnv()
	sys := NewRespawnSystem(e.w, e.sess, e.factory, 12, 3, zaptest.NewLogger(t))
	e.sess.LoseLife()
	e.sess.StartRespawn(0.25)

	sys.Update(tick)
	sys.Update(tick)
	if _, _, ok := e.w.Ship(); ok {
		t.Fatal("respawned early")
	}
	sys.Update(tick)
	_, ship, ok := e.w.Ship()
	if !ok || !ship.Invulnerable() {
		t.Fatalf("ship = %+v ok = %v", ship, ok)
	}
	if e.sess.RespawnPending() {
		t.Error("respawn still pending")
	}
}

func TestSpawnSystemDropsOldLevelRequests(t *testing.T) {
	e := newEnv()
	e.queue.Push(spawn.Request{Kind: spawn.KindExplosion, Level: 1, Life: 1})
	e.queue.Push(spawn.Request{Kind: spawn.KindExplosion, Level: 0, Life: 1})
	NewSpawnSystem(e.queue, e.factory, zaptest.NewLogger(t)).Update(tick)
	if e.w.Explosions.Len() != 1 || e.queue.Len() != 0 {
		t.Errorf("explosions = %d queue = %d", e.w.Explosions.Len(), e.queue.Len())
	}
}

func TestLevelTransitionSweepsEveryLevelEntity(t *testing.T) {
	e := newEnv()
	level := NewLevelSystem(e.w, e.sess, e.queue, e.factory, e.bus, NewCleanupSystem(e.w.ECS), testRules{asteroids: 4},
		LevelConfig{ShipRadius: 12, Invulnerability: 3, MinSpeed: 20, MaxSpeed: 50}, zaptest.NewLogger(t))
	level.NewGame()
	shipID, _, _ := e.w.Ship()

	// leftovers of every kind, and a hostile-free field
	for _, id := range e.w.Asteroids.IDs() {
		e.w.ECS.MarkForDestruction(id)
	}
	e.w.ECS.FlushDestroyQueue()
	old := []ecs.EntityID{
		e.factory.Projectile(spawn.Shot{Weapon: component.Rapid, Damage: 1, Radius: 2, Life: 1}),
		e.factory.Powerup(geom.Vec2{}, geom.Vec2{}, component.PowerupShield, 5),
		e.factory.Explosion(geom.Vec2{}, 8, 1),
		e.factory.UfoLaser(geom.Vec2{}, geom.Vec2{}, 2),
	}
	e.queue.Push(spawn.Request{Kind: spawn.KindPowerup, Level: 1, Life: 5})
	body, _ := e.w.Bodies.Get(shipID)
	body.Position = geom.V(100, 100)

	level.Update(tick)

	if e.sess.Level != 2 || e.sess.Phase != session.Playing {
		t.Fatalf("session = level %d phase %s", e.sess.Level, e.sess.Phase)
	}
	for _, id := range old {
		if e.w.ECS.State(id) != ecs.Despawned {
			t.Errorf("%s survived the level change", id)
		}
	}
	for _, id := range e.w.LevelScoped.IDs() {
		tag, _ := e.w.LevelScoped.Get(id)
		if tag.Level != 2 && e.w.ECS.Alive(id) {
			t.Errorf("%s from level %d still alive", id, tag.Level)
		}
	}
	if e.queue.Len() != 0 {
		t.Error("old level spawn request kept")
	}
	if !e.w.ECS.Alive(shipID) || body.Position != (geom.Vec2{}) {
		t.Errorf("ship alive=%v position=%+v", e.w.ECS.Alive(shipID), body.Position)
	}
	if n := world.AliveCount(e.w, e.w.Asteroids); n != 4 {
		t.Errorf("level 2 asteroids = %d", n)
	}
	for _, id := range e.w.Asteroids.IDs() {
		a, _ := e.w.Asteroids.Get(id)
		if a.Variant != 2 {
			t.Errorf("variant = %d", a.Variant)
		}
	}
}

func TestLevelHoldsWhileHostilesRemain(t *testing.T) {
	e := newEnv()
	level := NewLevelSystem(e.w, e.sess, e.queue, e.factory, e.bus, NewCleanupSystem(e.w.ECS), testRules{asteroids: 2},
		LevelConfig{ShipRadius: 12, Invulnerability: 3, MinSpeed: 20, MaxSpeed: 50}, zaptest.NewLogger(t))
	level.NewGame()
	level.Update(tick)
	if e.sess.Level != 1 {
		t.Fatalf("advanced with asteroids alive")
	}
	e.sess.Phase = session.GameOver
	for _, id := range e.w.Asteroids.IDs() {
		e.w.ECS.MarkForDestruction(id)
	}
	e.w.ECS.FlushDestroyQueue()
	level.Update(tick)
	if e.sess.Level != 1 {
		t.Error("advanced after game over")
	}
}

func TestEventLogCountsDeliveredEvents(t *testing.T) {
	bus := event.NewBus()
	l := NewEventLog(bus, zaptest.NewLogger(t))
	dispatch := NewEventDispatchSystem(bus)

	event.Emit(bus, event.AsteroidDestroyed{Size: 2})
	event.Emit(bus, event.AsteroidDestroyed{Size: 0})
	event.Emit(bus, event.ShipDestroyed{LivesLeft: 1})
	if l.Stats().AsteroidsDestroyed != 0 {
		t.Fatal("events delivered in the emitting tick")
	}
	dispatch.Update(tick)
	s := l.Stats()
	if s.AsteroidsDestroyed != 2 || s.ShipsLost != 1 {
		t.Errorf("stats = %+v", s)
	}
}
