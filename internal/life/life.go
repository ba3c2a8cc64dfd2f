// Package life implements Conway's Game of Life on an unbounded plane. Only
// live cells are stored, so memory and the cost of a generation scale with
// the population rather than with any bounding box.
package life

import (
	"encoding/binary"
	"hash/maphash"

	"lifeplane/internal/core"
)

type cellSet map[core.Coord]struct{}

// Grid is a sparse live-cell set on the infinite integer lattice.
type Grid struct {
	rule       core.Rule
	cells      cellSet
	generation int
}

// New returns an empty grid running the classic B3/S23 rule.
func New() *Grid { return NewWithRule(core.Conway) }

// NewWithRule returns an empty grid running the provided rule.
func NewWithRule(rule core.Rule) *Grid {
	return &Grid{rule: rule, cells: cellSet{}}
}

// Rule returns the transition rule.
func (g *Grid) Rule() core.Rule { return g.rule }

// Generation returns the number of advances since the grid was last cleared.
func (g *Grid) Generation() int { return g.generation }

// Population returns the number of live cells.
func (g *Grid) Population() int { return len(g.cells) }

// IsAlive reports whether c is a live cell.
func (g *Grid) IsAlive(c core.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Toggle flips the state of c.
func (g *Grid) Toggle(c core.Coord) {
	if _, ok := g.cells[c]; ok {
		delete(g.cells, c)
		return
	}
	g.cells[c] = struct{}{}
}

// Seed marks origin+offset alive for every offset in pattern. Existing cells
// are kept; call Clear first to replace them.
func (g *Grid) Seed(origin core.Coord, pattern []core.Coord) {
	for _, off := range pattern {
		g.cells[origin.Add(off)] = struct{}{}
	}
}

// Clear removes every live cell and resets the generation counter.
func (g *Grid) Clear() {
	g.cells = cellSet{}
	g.generation = 0
}

// Each visits live cells in unspecified order until fn returns false.
func (g *Grid) Each(fn func(core.Coord) bool) {
	for c := range g.cells {
		if !fn(c) {
			return
		}
	}
}

// LiveCells returns a snapshot of the live cells in unspecified order.
func (g *Grid) LiveCells() []core.Coord {
	out := make([]core.Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	return out
}

// Neighbors returns how many of the eight cells around c are alive.
func (g *Grid) Neighbors(c core.Coord) int {
	n := 0
	for _, off := range core.NeighborOffsets {
		if _, ok := g.cells[c.Add(off)]; ok {
			n++
		}
	}
	return n
}

// candidates returns every live cell together with its eight neighbors. A
// dead cell outside this set has no live neighbors and cannot be born.
func (g *Grid) candidates() cellSet {
	out := make(cellSet, len(g.cells)*9)
	for c := range g.cells {
		out[c] = struct{}{}
		for _, off := range core.NeighborOffsets {
			out[c.Add(off)] = struct{}{}
		}
	}
	return out
}

// Advance computes the next generation. The next set is built from counts
// against the current set and only then installed, so no evaluation observes
// a partially written generation.
func (g *Grid) Advance() {
	next := make(cellSet, len(g.cells))
	for c := range g.candidates() {
		_, alive := g.cells[c]
		if g.rule.Next(alive, g.Neighbors(c)) {
			next[c] = struct{}{}
		}
	}
	g.cells = next
	g.generation++
}

// Bounds returns the smallest rect holding every live cell. ok is false when
// the grid is empty.
func (g *Grid) Bounds() (r core.Rect, ok bool) {
	for c := range g.cells {
		if !ok {
			r = core.Rect{MinX: c.X, MinY: c.Y, MaxX: c.X + 1, MaxY: c.Y + 1}
			ok = true
			continue
		}
		r.MinX = min(r.MinX, c.X)
		r.MinY = min(r.MinY, c.Y)
		r.MaxX = max(r.MaxX, c.X+1)
		r.MaxY = max(r.MaxY, c.Y+1)
	}
	return r, ok
}

var hashSeed = maphash.MakeSeed()

// Hash returns an order-independent digest of the live set. Equal sets hash
// equal within one process.
func (g *Grid) Hash() uint64 {
	var sum uint64
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var buf [16]byte
	for c := range g.cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Reset()
		h.Write(buf[:])
		sum += h.Sum64()
	}
	return sum ^ uint64(len(g.cells))
}

