package ecs

import "testing"

type tag struct{}

type pos struct{ X, Y float64 }

func newTestWorld() (*World, *Store[pos], *Store[tag]) {
	w := NewWorld()
	p := NewStore[pos]()
	t := NewStore[tag]()
	w.Registry().Register(p)
	w.Registry().Register(t)
	return w, p, t
}

func TestMarkForDestructionOnce(t *testing.T) {
	w, p, _ := newTestWorld()
	id := w.CreateEntity()
	p.Set(id, &pos{})

	if !w.MarkForDestruction(id) {
		t.Fatal("first mark should succeed")
	}
	if w.MarkForDestruction(id) {
		t.Fatal("second mark in the same tick should be rejected")
	}
	if got := w.State(id); got != PendingDespawn {
		t.Fatalf("state = %v, want pending_despawn", got)
	}
	if got := w.FlushDestroyQueue(); got != 1 {
		t.Fatalf("flushed %d, want 1", got)
	}
	if got := w.State(id); got != Despawned {
		t.Fatalf("state = %v, want despawned", got)
	}
	if p.Has(id) {
		t.Fatal("component should be removed on flush")
	}
	if w.MarkForDestruction(id) {
		t.Fatal("stale id must not be queued")
	}
	if got := w.FlushDestroyQueue(); got != 0 {
		t.Fatalf("second flush destroyed %d", got)
	}
}

func TestStaleIDAfterReuse(t *testing.T) {
	w, _, _ := newTestWorld()
	old := w.CreateEntity()
	w.MarkForDestruction(old)
	w.FlushDestroyQueue()

	reused := w.CreateEntity()
	if reused.Index() != old.Index() {
		t.Fatalf("expected slot reuse, got %v and %v", old, reused)
	}
	if w.State(old) != Despawned {
		t.Fatal("old generation must stay despawned")
	}
	if w.State(reused) != Alive {
		t.Fatal("new generation must be alive")
	}
}

func TestZeroIDNeverAlive(t *testing.T) {
	w := NewWorld()
	if w.Alive(0) {
		t.Fatal("zero id reported alive")
	}
	if id := w.CreateEntity(); id.IsZero() {
		t.Fatal("pool handed out the zero id")
	}
}

func TestSweepOnlyTagged(t *testing.T) {
	w, p, tg := newTestWorld()
	var scoped []EntityID
	for i := 0; i < 5; i++ {
		id := w.CreateEntity()
		p.Set(id, &pos{X: float64(i)})
		tg.Set(id, &tag{})
		scoped = append(scoped, id)
	}
	keep := w.CreateEntity()
	p.Set(keep, &pos{})

	// one already pending must not be double counted
	w.MarkForDestruction(scoped[0])
	if n := Sweep(w, tg); n != 4 {
		t.Fatalf("sweep marked %d, want 4", n)
	}
	w.FlushDestroyQueue()
	for _, id := range scoped {
		if w.State(id) != Despawned {
			t.Fatalf("%v survived sweep", id)
		}
	}
	if !w.Alive(keep) {
		t.Fatal("untagged entity was swept")
	}
	if tg.Len() != 0 {
		t.Fatalf("tag store has %d entries", tg.Len())
	}
}

func TestSweepAll(t *testing.T) {
	w, p, tg := newTestWorld()
	a := w.CreateEntity()
	p.Set(a, &pos{})
	b := w.CreateEntity()
	tg.Set(b, &tag{})
	if n := w.SweepAll(); n != 2 {
		t.Fatalf("SweepAll marked %d, want 2", n)
	}
	w.FlushDestroyQueue()
	if w.Pool().Len() != 0 {
		t.Fatalf("%d entities still alive", w.Pool().Len())
	}
}

func TestStoreOrderStable(t *testing.T) {
	s := NewStore[pos]()
	ids := []EntityID{5, 3, 9, 1}
	for i, id := range ids {
		s.Set(id, &pos{X: float64(i)})
	}
	s.Remove(3)
	want := []EntityID{5, 9, 1}
	got := s.IDs()
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if c, ok := s.Get(1); !ok || c.X != 3 {
		t.Fatalf("index broken after remove: %v %v", c, ok)
	}
}

func TestEach2(t *testing.T) {
	a := NewStore[pos]()
	b := NewStore[tag]()
	a.Set(1, &pos{})
	a.Set(2, &pos{})
	a.Set(3, &pos{})
	b.Set(3, &tag{})
	b.Set(1, &tag{})
	var got []EntityID
	Each2(a, b, func(id EntityID, _ *pos, _ *tag) { got = append(got, id) })
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("Each2 = %v", got)
	}
}
