package ecs

// Lifecycle is the externally visible state of an entity reference.
type Lifecycle uint8

const (
	Alive Lifecycle = iota
	PendingDespawn
	Despawned
)

func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case PendingDespawn:
		return "pending_despawn"
	default:
		return "despawned"
	}
}

// World is the top-level ECS container. It owns the entity pool, the component
// registry, and a deferred destruction queue flushed by CleanupSystem each tick.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
	pending      map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 64),
		pending:      make(map[EntityID]struct{}, 64),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

// Alive reports whether id refers to a live entity that is not queued for
// destruction.
func (w *World) Alive(id EntityID) bool {
	return w.State(id) == Alive
}

// State returns the lifecycle state of id. Stale ids are Despawned.
func (w *World) State(id EntityID) Lifecycle {
	if !w.pool.Alive(id) {
		return Despawned
	}
	if _, ok := w.pending[id]; ok {
		return PendingDespawn
	}
	return Alive
}

// MarkForDestruction queues an entity for end-of-tick cleanup. It returns
// false when id is stale or already queued, so each entity enters
// PendingDespawn at most once.
func (w *World) MarkForDestruction(id EntityID) bool {
	if w.State(id) != Alive {
		return false
	}
	w.pending[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
	return true
}

// Pending returns the number of entities waiting for the next flush.
func (w *World) Pending() int {
	return len(w.destroyQueue)
}

// FlushDestroyQueue destroys all queued entities and clears their components.
// Called by CleanupSystem at the end of each tick. Returns the number of
// entities destroyed.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.destroyQueue {
		w.registry.RemoveAll(id)
		if w.pool.Destroy(id) {
			n++
		}
		delete(w.pending, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// Sweep marks every entity carrying a component in tag for destruction and
// returns how many were newly marked.
func Sweep[T any](w *World, tag *Store[T]) int {
	n := 0
	for _, id := range tag.IDs() {
		if w.MarkForDestruction(id) {
			n++
		}
	}
	return n
}

// SweepAll marks every entity known to the registry for destruction.
func (w *World) SweepAll() int {
	n := 0
	for _, id := range w.registry.IDs() {
		if w.MarkForDestruction(id) {
			n++
		}
	}
	return n
}
