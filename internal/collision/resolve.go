package collision

import (
	"math"
	"math/rand"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/core/event"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/session"
	"github.com/bzar/spacerocks/internal/spawn"
	"github.com/bzar/spacerocks/internal/world"
	"go.uber.org/zap"
)

// Rules supplies scores. Implemented by the scripting engine.
type Rules interface {
	AsteroidScore(size component.AsteroidSize) int
	UfoScore(level int) int
}

// PowerupRoller picks the kind of a dropped powerup.
type PowerupRoller interface {
	Roll(r *rand.Rand) component.PowerupKind
}

// Config holds the reward and damage tuning used during resolution.
type Config struct {
	AsteroidFragments int
	PowerupsPerUfo    int
	FragmentSpeed     float64
	PowerupLife       float64
	PowerupSpeedMin   float64
	PowerupSpeedMax   float64
	ExplosionLife     float64
	RespawnDelay      float64
	MaxShield         int
	// LaserKnockback scales a ufo laser's velocity into the push a
	// shielded ship receives.
	LaserKnockback float64
}

// Credit records which event destroyed a target.
type Credit struct {
	Target ecs.EntityID
	Event  Event
}

// Report summarises one Resolve call.
type Report struct {
	Tick       uint64
	Events     int
	Resolved   int // destructibles transitioned to PendingDespawn
	Absorbed   int // hits taken by a shield
	Hits       int // non-lethal damage
	Bounces    int
	Collected  int // powerups applied
	Duplicates int // events dropped because a participant was already resolved this tick
	Stale      int // events referencing a despawned entity
	Credits    []Credit
}

// Resolver applies collision events. It is the only code that changes
// entity lifecycle during the collision phase.
type Resolver struct {
	w     *world.State
	queue *spawn.Queue
	bus   *event.Bus
	rules Rules
	drops PowerupRoller
	cfg   Config
	log   *zap.Logger

	resolved map[ecs.EntityID]struct{}
	report   Report
}

func NewResolver(w *world.State, queue *spawn.Queue, bus *event.Bus, rules Rules, drops PowerupRoller, cfg Config, log *zap.Logger) *Resolver {
	return &Resolver{
		w:        w,
		queue:    queue,
		bus:      bus,
		rules:    rules,
		drops:    drops,
		cfg:      cfg,
		log:      log,
		resolved: make(map[ecs.EntityID]struct{}),
	}
}

// Resolve processes events in order. Every destructible is resolved at most
// once: the first event whose hit destroys it is credited, later events
// naming it are duplicates. Projectiles are consumed by the first event
// that reaches them, whether or not it was credited.
func (r *Resolver) Resolve(events []Event, sess *session.State) Report {
	clear(r.resolved)
	r.report = Report{Tick: sess.Tick, Events: len(events)}

	for _, ev := range events {
		if r.w.ECS.State(ev.A) == ecs.Despawned || r.w.ECS.State(ev.B) == ecs.Despawned {
			r.report.Stale++
			r.log.Debug("stale collision event dropped", zap.Stringer("event", ev))
			continue
		}
		switch ev.Kind {
		case WeaponAsteroid:
			r.weaponAsteroid(ev, sess)
		case WeaponUfo:
			r.weaponUfo(ev, sess)
		case AsteroidShip, UfoShip, LaserShip:
			r.shipHit(ev, sess)
		case AsteroidAsteroid:
			r.bounce(ev)
		case PowerupShip:
			r.powerupShip(ev, sess)
		}
	}
	return r.report
}

func (r *Resolver) duplicate(ev Event) {
	r.report.Duplicates++
	r.log.Debug("duplicate collision event dropped", zap.Stringer("event", ev))
}

func (r *Resolver) done(id ecs.EntityID) bool {
	_, ok := r.resolved[id]
	return ok || !r.w.ECS.Alive(id)
}

// consume marks a projectile or laser as spent. False if it already was.
func (r *Resolver) consume(id ecs.EntityID) bool {
	return r.w.ECS.MarkForDestruction(id)
}

func (r *Resolver) credit(target ecs.EntityID, ev Event) {
	r.resolved[target] = struct{}{}
	r.report.Resolved++
	r.report.Credits = append(r.report.Credits, Credit{Target: target, Event: ev})
}

func (r *Resolver) weaponAsteroid(ev Event, sess *session.State) {
	proj, ok := r.w.Projectiles.Get(ev.A)
	if !ok || !r.consume(ev.A) {
		r.duplicate(ev)
		return
	}
	if r.done(ev.B) {
		r.duplicate(ev)
		return
	}
	ast, ok := r.w.Asteroids.Get(ev.B)
	if !ok {
		return
	}
	ast.Integrity -= proj.Damage
	if ast.Integrity > 0 {
		r.report.Hits++
		return
	}
	r.destroyAsteroid(ev.B, ev.A, ev, sess)
}

func (r *Resolver) weaponUfo(ev Event, sess *session.State) {
	proj, ok := r.w.Projectiles.Get(ev.A)
	if !ok || !r.consume(ev.A) {
		r.duplicate(ev)
		return
	}
	if r.done(ev.B) {
		r.duplicate(ev)
		return
	}
	ufo, ok := r.w.Ufos.Get(ev.B)
	if !ok {
		return
	}
	ufo.Life -= proj.Damage
	if ufo.Life > 0 {
		r.report.Hits++
		return
	}
	r.destroyUfo(ev.B, ev.A, ev, sess)
}

func (r *Resolver) shipHit(ev Event, sess *session.State) {
	if ev.Kind == LaserShip {
		if !r.consume(ev.A) {
			r.duplicate(ev)
			return
		}
	} else if r.done(ev.A) {
		// the rammer was destroyed earlier this tick
		r.duplicate(ev)
		return
	}
	if r.done(ev.B) {
		r.duplicate(ev)
		return
	}
	ship, ok := r.w.Ships.Get(ev.B)
	if !ok || ship.Invulnerable() {
		return
	}

	if ship.Shield > 0 {
		ship.Shield--
		r.resolved[ev.B] = struct{}{}
		r.report.Absorbed++
		event.Emit(r.bus, event.ShieldAbsorbed{Ship: ev.B, Cause: ev.A, ShieldLeft: ship.Shield, Tick: sess.Tick})
		switch ev.Kind {
		case AsteroidShip:
			r.destroyAsteroid(ev.A, ev.B, ev, sess)
		case UfoShip:
			r.destroyUfo(ev.A, ev.B, ev, sess)
		case LaserShip:
			if laser, ok := r.w.Bodies.Get(ev.A); ok {
				if body, ok := r.w.Bodies.Get(ev.B); ok {
					body.Velocity = body.Velocity.Add(laser.Velocity.Scale(r.cfg.LaserKnockback))
				}
			}
		}
		return
	}
	r.destroyShip(ev.B, ev.A, ev, sess)
}

func (r *Resolver) bounce(ev Event) {
	if r.done(ev.A) || r.done(ev.B) {
		r.duplicate(ev)
		return
	}
	ba, okA := r.w.Bodies.Get(ev.A)
	bb, okB := r.w.Bodies.Get(ev.B)
	aa, okC := r.w.Asteroids.Get(ev.A)
	ab, okD := r.w.Asteroids.Get(ev.B)
	if !okA || !okB || !okC || !okD {
		return
	}
	n := bb.Position.Sub(ba.Position).Normalize()
	approach := ba.Velocity.Sub(bb.Velocity).Dot(n)
	if n.LenSq() == 0 || approach <= 0 {
		return // already separating
	}
	ma := aa.Size.Radius() * aa.Size.Radius()
	mb := ab.Size.Radius() * ab.Size.Radius()
	j := 2 * approach / (ma + mb)
	ba.Velocity = ba.Velocity.Sub(n.Scale(j * mb))
	bb.Velocity = bb.Velocity.Add(n.Scale(j * ma))
	r.report.Bounces++
}

func (r *Resolver) powerupShip(ev Event, sess *session.State) {
	if !r.w.ECS.Alive(ev.B) {
		r.duplicate(ev)
		return
	}
	p, ok := r.w.Powerups.Get(ev.A)
	if !ok {
		r.duplicate(ev)
		return
	}
	ship, ok := r.w.Ships.Get(ev.B)
	if !ok {
		r.duplicate(ev)
		return
	}
	// lethal LoseLife on a ship already hit this tick is left for a later tick
	if _, hit := r.resolved[ev.B]; hit && p.Kind == component.PowerupLoseLife && sess.Lives <= 1 {
		r.duplicate(ev)
		return
	}
	if !r.consume(ev.A) {
		r.duplicate(ev)
		return
	}
	r.report.Collected++
	event.Emit(r.bus, event.PowerupCollected{Ship: ev.B, Powerup: ev.A, Kind: int(p.Kind), Tick: sess.Tick})

	if w, ok := p.Kind.Weapon(); ok {
		if ship.WeaponLevels[w] < component.MaxWeaponLevel {
			ship.WeaponLevels[w]++
		}
		ship.Weapon = w
		return
	}
	switch p.Kind {
	case component.PowerupExtraLife:
		sess.GainLife()
	case component.PowerupShield:
		if ship.Shield < r.cfg.MaxShield {
			ship.Shield++
		}
	case component.PowerupLoseLife:
		if sess.Lives > 1 {
			sess.LoseLife()
			return
		}
		r.destroyShip(ev.B, ev.A, ev, sess)
	}
}

func (r *Resolver) explode(cause ecs.EntityID, pos geom.Vec2, radius float64, level int) {
	r.queue.Push(spawn.Request{
		Kind:     spawn.KindExplosion,
		Cause:    cause,
		Level:    level,
		Position: pos,
		Radius:   radius,
		Life:     r.cfg.ExplosionLife,
	})
}

func (r *Resolver) destroyAsteroid(id, credited ecs.EntityID, ev Event, sess *session.State) {
	ast, okA := r.w.Asteroids.Get(id)
	body, okB := r.w.Bodies.Get(id)
	if !okA || !okB {
		r.duplicate(ev)
		return
	}
	if !r.w.ECS.MarkForDestruction(id) {
		return
	}
	r.credit(id, ev)

	score := r.rules.AsteroidScore(ast.Size)
	sess.AddScore(score)

	fragments := 0
	if smaller, ok := ast.Size.Smaller(); ok && r.cfg.AsteroidFragments > 0 {
		fragments = r.cfg.AsteroidFragments
		base := sess.Rand.Float64() * 2 * math.Pi
		for i := 0; i < fragments; i++ {
			dir := geom.FromAngle(base + 2*math.Pi*float64(i)/float64(fragments))
			r.queue.Push(spawn.Request{
				Kind:     spawn.KindAsteroid,
				Cause:    id,
				Level:    sess.Level,
				Position: body.Position.Add(dir.Scale(smaller.Radius())),
				Velocity: body.Velocity.Add(dir.Scale(r.cfg.FragmentSpeed)),
				Spin:     (sess.Rand.Float64() - 0.5) * 2,
				Size:     smaller,
				Variant:  ast.Variant,
			})
		}
	}
	r.explode(id, body.Position, ast.Size.Radius(), sess.Level)

	event.Emit(r.bus, event.AsteroidDestroyed{
		Asteroid:  id,
		Credited:  credited,
		Size:      int(ast.Size),
		Position:  body.Position,
		Score:     score,
		Fragments: fragments,
		Tick:      sess.Tick,
	})
}

func (r *Resolver) destroyUfo(id, credited ecs.EntityID, ev Event, sess *session.State) {
	body, ok := r.w.Bodies.Get(id)
	if !ok || !r.w.Ufos.Has(id) {
		r.duplicate(ev)
		return
	}
	if !r.w.ECS.MarkForDestruction(id) {
		return
	}
	r.credit(id, ev)

	score := r.rules.UfoScore(sess.Level)
	sess.AddScore(score)

	for i := 0; i < r.cfg.PowerupsPerUfo; i++ {
		dir := geom.FromAngle(sess.Rand.Float64() * 2 * math.Pi)
		speed := geom.Lerp(r.cfg.PowerupSpeedMin, r.cfg.PowerupSpeedMax, sess.Rand.Float64())
		r.queue.Push(spawn.Request{
			Kind:     spawn.KindPowerup,
			Cause:    id,
			Level:    sess.Level,
			Position: body.Position,
			Velocity: dir.Scale(speed),
			Powerup:  r.drops.Roll(sess.Rand),
			Life:     r.cfg.PowerupLife,
		})
	}
	radius := 0.0
	if c, ok := r.w.Colliders.Get(id); ok {
		radius = c.Shape.Radius
	}
	r.explode(id, body.Position, radius, sess.Level)

	event.Emit(r.bus, event.UfoDestroyed{
		Ufo:      id,
		Credited: credited,
		Position: body.Position,
		Score:    score,
		Powerups: r.cfg.PowerupsPerUfo,
		Tick:     sess.Tick,
	})
}

func (r *Resolver) destroyShip(id, cause ecs.EntityID, ev Event, sess *session.State) {
	body, ok := r.w.Bodies.Get(id)
	if !ok || !r.w.Ships.Has(id) {
		r.duplicate(ev)
		return
	}
	if !r.w.ECS.MarkForDestruction(id) {
		return
	}
	r.credit(id, ev)
	left := sess.LoseLife()
	radius := 0.0
	if c, ok := r.w.Colliders.Get(id); ok {
		radius = c.Shape.Radius
	}
	r.explode(id, body.Position, radius, sess.Level)

	event.Emit(r.bus, event.ShipDestroyed{Ship: id, Cause: cause, Position: body.Position, LivesLeft: left, Tick: sess.Tick})
	if left == 0 {
		event.Emit(r.bus, event.GameOver{Level: sess.Level, Score: sess.Score})
		return
	}
	sess.StartRespawn(r.cfg.RespawnDelay)
}
