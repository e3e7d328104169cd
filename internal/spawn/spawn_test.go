package spawn

import (
	"testing"

	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/world"
)

func TestQueueDiscardLevel(t *testing.T) {
	q := NewQueue()
	q.Push(Request{Kind: KindAsteroid, Level: 1})
	q.Push(Request{Kind: KindExplosion, Level: 2})
	q.Push(Request{Kind: KindPowerup, Level: 1})

	if n := q.DiscardLevel(1); n != 2 {
		t.Fatalf("discarded %d, want 2", n)
	}
	reqs := q.Drain()
	if len(reqs) != 1 || reqs[0].Kind != KindExplosion {
		t.Fatalf("remaining = %+v", reqs)
	}
	if q.Len() != 0 {
		t.Error("drain did not empty the queue")
	}
}

func TestQueueCountFor(t *testing.T) {
	q := NewQueue()
	cause := ecs.NewEntityID(3, 1)
	q.Push(Request{Kind: KindAsteroid, Cause: cause})
	q.Push(Request{Kind: KindAsteroid, Cause: cause})
	q.Push(Request{Kind: KindExplosion, Cause: cause})
	q.Push(Request{Kind: KindAsteroid, Cause: ecs.NewEntityID(4, 1)})
	if n := q.CountFor(cause, KindAsteroid); n != 2 {
		t.Errorf("count = %d", n)
	}
}

func TestFactoryTagsLevelScoped(t *testing.T) {
	w := world.NewState(800, 480)
	level := 2
	f := NewFactory(w, func() int { return level })

	ast := f.Asteroid(geom.V(10, 10), geom.Vec2{}, 0, component.Large, 14)
	proj := f.Projectile(Shot{Weapon: component.Rapid, Damage: 1, Radius: 2, Life: 1})
	beam := f.Projectile(Shot{Weapon: component.Beam, Damage: 3, Radius: 2, Length: 300, Life: 0.1})
	ship := f.Ship(geom.Vec2{}, 12, 3)

	for _, id := range []ecs.EntityID{ast, proj, beam} {
		tag, ok := w.LevelScoped.Get(id)
		if !ok || tag.Level != 2 {
			t.Errorf("%s not tagged for level 2", id)
		}
	}
	if w.LevelScoped.Has(ship) {
		t.Error("ship must be persistent")
	}

	a, _ := w.Asteroids.Get(ast)
	if a.Integrity != component.Large.Integrity() || a.Variant != 2 {
		t.Errorf("asteroid = %+v", a)
	}
	if c, _ := w.Colliders.Get(beam); c.Shape.Kind != geom.Line {
		t.Error("beam should have a line collider")
	}
	if w.Wrapping.Has(beam) {
		t.Error("beams do not wrap")
	}
	s, _ := w.Ships.Get(ship)
	if s.WeaponLevels[component.Rapid] != 1 || !s.Invulnerable() {
		t.Errorf("ship = %+v", s)
	}
}

func TestFactoryApplyDropsOtherLevel(t *testing.T) {
	w := world.NewState(800, 480)
	f := NewFactory(w, func() int { return 3 })

	if _, ok := f.Apply(Request{Kind: KindPowerup, Level: 2, Life: 5}); ok {
		t.Fatal("request from a previous level was applied")
	}
	id, ok := f.Apply(Request{Kind: KindPowerup, Level: 3, Powerup: component.PowerupShield, Life: 5})
	if !ok {
		t.Fatal("current-level request dropped")
	}
	p, _ := w.Powerups.Get(id)
	e, _ := w.Expiring.Get(id)
	if p.Kind != component.PowerupShield || e.Life != 5 {
		t.Errorf("powerup = %+v life = %v", p, e.Life)
	}
}
