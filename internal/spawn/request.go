package spawn

import (
	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/geom"
)

// Kind selects what a Request creates.
type Kind uint8

const (
	KindAsteroid Kind = iota
	KindPowerup
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindPowerup:
		return "powerup"
	case KindExplosion:
		return "explosion"
	}
	return "unknown"
}

// Request is a deferred entity creation produced while resolving a
// destruction. Cause is the entity whose destruction produced it.
type Request struct {
	Kind  Kind
	Cause ecs.EntityID
	Level int // level the request belongs to

	Position geom.Vec2
	Velocity geom.Vec2
	Spin     float64

	Size    component.AsteroidSize // KindAsteroid
	Variant int                    // KindAsteroid
	Powerup component.PowerupKind  // KindPowerup
	Life    float64                // KindPowerup, KindExplosion
	Radius  float64                // KindExplosion
}

// Queue buffers requests between collision resolution and the spawn phase.
// Accessed only from the game loop goroutine.
type Queue struct {
	reqs []Request
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(r Request) {
	q.reqs = append(q.reqs, r)
}

func (q *Queue) Len() int {
	return len(q.reqs)
}

// CountFor returns how many queued requests were caused by id.
func (q *Queue) CountFor(id ecs.EntityID, kind Kind) int {
	n := 0
	for _, r := range q.reqs {
		if r.Cause == id && r.Kind == kind {
			n++
		}
	}
	return n
}

// Drain returns the queued requests in push order and empties the queue.
func (q *Queue) Drain() []Request {
	out := q.reqs
	q.reqs = nil
	return out
}

// DiscardLevel drops requests belonging to level, returning how many were
// dropped. Used on level transition so nothing from the old level leaks
// into the next one.
func (q *Queue) DiscardLevel(level int) int {
	kept := q.reqs[:0]
	dropped := 0
	for _, r := range q.reqs {
		if r.Level == level {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(q.reqs); i++ {
		q.reqs[i] = Request{}
	}
	q.reqs = kept
	return dropped
}

// Reset drops everything.
func (q *Queue) Reset() {
	q.reqs = nil
}
