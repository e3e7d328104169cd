package world

import (
	"math"

	"github.com/bzar/spacerocks/internal/core/ecs"
)

// Grid is the collision broad phase: a cell grid rebuilt every tick.
// Cell size is chosen so that a 3x3 neighbourhood of cells covers any pair
// of bounding circles that can touch. Entities wider than a cell are kept
// in an overflow list checked against everything.
// Accessed only from the game loop goroutine, so no locks.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]ecs.EntityID
	overflow []ecs.EntityID
}

type cellKey struct {
	cx int32
	cy int32
}

func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]ecs.EntityID),
	}
}

func (g *Grid) toCell(v float64) int32 {
	return int32(math.Floor(v / g.cellSize))
}

// Reset empties the grid, keeping allocated cells for reuse.
func (g *Grid) Reset() {
	for k, ids := range g.cells {
		g.cells[k] = ids[:0]
	}
	g.overflow = g.overflow[:0]
}

// Add places an entity by the centre and radius of its bounding circle.
func (g *Grid) Add(id ecs.EntityID, x, y, radius float64) {
	if radius*2 > g.cellSize {
		g.overflow = append(g.overflow, id)
		return
	}
	k := cellKey{cx: g.toCell(x), cy: g.toCell(y)}
	g.cells[k] = append(g.cells[k], id)
}

// Nearby returns all ids in a 3x3 neighbourhood of cells around the given
// position plus the overflow list. Caller does narrow-phase filtering.
func (g *Grid) Nearby(x, y float64) []ecs.EntityID {
	cx := g.toCell(x)
	cy := g.toCell(y)
	var result []ecs.EntityID
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			result = append(result, g.cells[cellKey{cx: cx + dx, cy: cy + dy}]...)
		}
	}
	return append(result, g.overflow...)
}
