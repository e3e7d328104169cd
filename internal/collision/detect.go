package collision

import (
	"github.com/bzar/spacerocks/internal/component"
	"github.com/bzar/spacerocks/internal/core/ecs"
	"github.com/bzar/spacerocks/internal/geom"
	"github.com/bzar/spacerocks/internal/world"
)

// CellSize of the broad-phase grid. Twice the largest regular collider
// (large asteroid, radius 24) rounded up, so touching pairs always fall in
// neighbouring cells.
const CellSize = 64

// Detector finds overlapping pairs. It never changes entity state.
type Detector struct {
	w      *world.State
	grid   *world.Grid
	shapes map[ecs.EntityID]geom.Shape
	order  []ecs.EntityID // every collidable entity, store order
	rank   map[ecs.EntityID]int
}

func NewDetector(w *world.State) *Detector {
	return &Detector{
		w:      w,
		grid:   world.NewGrid(CellSize),
		shapes: make(map[ecs.EntityID]geom.Shape),
		rank:   make(map[ecs.EntityID]int),
	}
}

// WorldShape places a body-local collider in the arena.
func WorldShape(b *component.Body, c *component.Collider) geom.Shape {
	s := c.Shape
	if s.Kind == geom.Line {
		s.Center = s.Center.Rotate(b.Rotation)
		s.Delta = s.Delta.Rotate(b.Rotation)
	}
	return s.Translate(b.Position)
}

func (d *Detector) rebuild() {
	d.grid.Reset()
	clear(d.shapes)
	clear(d.rank)
	d.order = d.order[:0]
	ecs.Each2(d.w.Colliders, d.w.Bodies, func(id ecs.EntityID, c *component.Collider, b *component.Body) {
		if !d.w.ECS.Alive(id) {
			return
		}
		s := WorldShape(b, c)
		d.shapes[id] = s
		d.order = append(d.order, id)
		center, r := s.Bounds()
		d.grid.Add(id, center.X, center.Y, r)
	})
	for i, id := range d.w.Asteroids.IDs() {
		d.rank[id] = i
	}
}

// candidates returns the ids that may overlap s. Shapes too large for the
// grid are checked against everything.
func (d *Detector) candidates(s geom.Shape) []ecs.EntityID {
	center, r := s.Bounds()
	if r*2 > CellSize {
		return d.order
	}
	return d.grid.Nearby(center.X, center.Y)
}

// Detect returns this tick's collision events in a deterministic order:
// projectiles in store order, then the ship, then asteroid pairs. Each pair
// appears at most once.
func (d *Detector) Detect(tick uint64) []Event {
	d.rebuild()
	var events []Event
	emit := func(kind Kind, a, b ecs.EntityID) {
		events = append(events, Event{Kind: kind, A: a, B: b, Tick: tick, Seq: len(events)})
	}

	for _, p := range d.w.Projectiles.IDs() {
		ps, ok := d.shapes[p]
		if !ok {
			continue
		}
		for _, t := range d.candidates(ps) {
			ts, ok := d.shapes[t]
			if !ok || !ps.Intersects(ts) {
				continue
			}
			switch {
			case d.w.Asteroids.Has(t):
				emit(WeaponAsteroid, p, t)
			case d.w.Ufos.Has(t):
				emit(WeaponUfo, p, t)
			}
		}
	}

	if shipID, ship, ok := d.w.Ship(); ok {
		if ss, ok := d.shapes[shipID]; ok {
			vulnerable := !ship.Invulnerable()
			for _, t := range d.candidates(ss) {
				ts, ok := d.shapes[t]
				if !ok || t == shipID || !ss.Intersects(ts) {
					continue
				}
				switch {
				case d.w.Powerups.Has(t):
					emit(PowerupShip, t, shipID)
				case !vulnerable:
				case d.w.Asteroids.Has(t):
					emit(AsteroidShip, t, shipID)
				case d.w.Ufos.Has(t):
					emit(UfoShip, t, shipID)
				case d.w.UfoLasers.Has(t):
					emit(LaserShip, t, shipID)
				}
			}
		}
	}

	for _, a := range d.w.Asteroids.IDs() {
		as, ok := d.shapes[a]
		if !ok {
			continue
		}
		ra := d.rank[a]
		for _, t := range d.candidates(as) {
			rt, isAsteroid := d.rank[t]
			if !isAsteroid || rt <= ra {
				continue
			}
			if ts, ok := d.shapes[t]; ok && as.Intersects(ts) {
				emit(AsteroidAsteroid, a, t)
			}
		}
	}
	return events
}
