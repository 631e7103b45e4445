package spatial

import (
	"math"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

// Grid is a spatial hash mapping world positions to candidate entities
// for the broad phase. Contents live for exactly one tick: the owner
// clears and rebuilds it every frame from the live entity set.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cells       map[int64][]*core.Entity
	all         []*core.Entity
}

// NewGrid creates a grid with the given cell size. Panics on a
// non-positive cell size.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		panic("spatial: cell size must be positive")
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[int64][]*core.Entity),
	}
}

// cellKey packs two 32-bit cell coordinates into a single map key.
// Two positions share a key iff they fall in the same cell.
func cellKey(cx, cy int32) int64 {
	return int64(cx)<<32 | int64(uint32(cy))
}

func (g *Grid) cellCoord(v float64) int32 {
	return int32(math.Floor(v * g.invCellSize))
}

// Insert adds an entity at a world position
func (g *Grid) Insert(e *core.Entity, x, y float64) {
	k := cellKey(g.cellCoord(x), g.cellCoord(y))
	g.cells[k] = append(g.cells[k], e)
	g.all = append(g.all, e)
}

// QueryInto appends every entity found in the cells covering a square
// of side 2*radius centered at (cx, cy) to buf and returns it. The
// buffer is caller owned and never cleared, so repeated queries can
// reuse one allocation. Cells are visited conservatively: results are
// a superset of the true circular neighborhood and exact distances are
// the narrow phase's job.
func (g *Grid) QueryInto(cx, cy, radius float64, buf []*core.Entity) []*core.Entity {
	return g.QueryRectInto(cx-radius, cy-radius, cx+radius, cy+radius, buf)
}

// QueryRectInto appends every entity in the cells covering the given
// world rectangle to buf and returns it
func (g *Grid) QueryRectInto(left, top, right, bottom float64, buf []*core.Entity) []*core.Entity {
	minX := g.cellCoord(left)
	maxX := g.cellCoord(right)
	minY := g.cellCoord(top)
	maxY := g.cellCoord(bottom)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			buf = append(buf, g.cells[cellKey(cx, cy)]...)
		}
	}
	return buf
}

// All returns every entity inserted since the last Clear
func (g *Grid) All() []*core.Entity {
	return g.all
}

// Len returns the number of inserted entities
func (g *Grid) Len() int {
	return len(g.all)
}

// CellSize returns the configured cell size
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Clear empties every cell but keeps the cell map and the backing
// lists, so the per-frame rebuild does not reallocate
func (g *Grid) Clear() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	g.all = g.all[:0]
}

// Reset discards the cell map entirely. Used on level transitions
// where the retained capacity would only pin dead entities.
func (g *Grid) Reset() {
	g.cells = make(map[int64][]*core.Entity)
	g.all = nil
}
