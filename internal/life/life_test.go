package life

import (
	"maps"
	"slices"
	"testing"

	"lifeplane/internal/core"
)

func cellSetOf(cells ...core.Coord) map[core.Coord]bool {
	out := map[core.Coord]bool{}
	for _, c := range cells {
		out[c] = true
	}
	return out
}

func liveSet(g *Grid) map[core.Coord]bool {
	return cellSetOf(g.LiveCells()...)
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	g := New()
	for _, c := range []core.Coord{core.C(0, 0), core.C(-7, 12), core.C(1<<40, -(1 << 40))} {
		if g.IsAlive(c) {
			t.Fatalf("cell %v alive on empty grid", c)
		}
		g.Toggle(c)
		if !g.IsAlive(c) {
			t.Fatalf("cell %v not alive after toggle", c)
		}
		g.Toggle(c)
		if g.IsAlive(c) {
			t.Fatalf("cell %v still alive after second toggle", c)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.Advance()
	}
	if g.Population() != 0 {
		t.Fatalf("empty grid grew to %d cells", g.Population())
	}
	if g.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", g.Generation())
	}
}

func TestSingleCellDies(t *testing.T) {
	g := New()
	g.Toggle(core.C(5, 5))
	g.Advance()
	if g.Population() != 0 {
		t.Fatalf("isolated cell survived, population %d", g.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	g := New()
	block := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(0, 1), core.C(1, 1)}
	g.Seed(core.C(-3, 4), block)
	before := liveSet(g)

	g.Advance()

	if !maps.Equal(before, liveSet(g)) {
		t.Fatalf("block changed: before %v after %v", before, liveSet(g))
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New()
	horizontal := cellSetOf(core.C(1, 2), core.C(2, 2), core.C(3, 2))
	vertical := cellSetOf(core.C(2, 1), core.C(2, 2), core.C(2, 3))
	for c := range horizontal {
		g.Toggle(c)
	}

	g.Advance()
	if got := liveSet(g); !maps.Equal(got, vertical) {
		t.Fatalf("after first step got %v, expected %v", got, vertical)
	}

	g.Advance()
	if got := liveSet(g); !maps.Equal(got, horizontal) {
		t.Fatalf("after second step got %v, expected %v", got, horizontal)
	}
}

func TestGliderTranslates(t *testing.T) {
	g := New()
	glider := []core.Coord{core.C(1, 0), core.C(2, 1), core.C(0, 2), core.C(1, 2), core.C(2, 2)}
	g.Seed(core.C(0, 0), glider)

	for i := 0; i < 4; i++ {
		g.Advance()
	}

	want := map[core.Coord]bool{}
	for _, c := range glider {
		want[c.Add(core.C(1, 1))] = true
	}
	if got := liveSet(g); !maps.Equal(got, want) {
		t.Fatalf("glider after 4 generations = %v, want %v", got, want)
	}
}

func TestSeedIsIdempotentUnion(t *testing.T) {
	g := New()
	origin := core.C(10, -10)
	pattern := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 3), core.C(1, 0)}

	g.Toggle(core.C(11, -10))
	g.Toggle(core.C(100, 100))
	g.Seed(origin, pattern)
	g.Seed(origin, pattern)

	cells := g.LiveCells()
	seen := map[core.Coord]int{}
	for _, c := range cells {
		seen[c]++
	}
	for c, n := range seen {
		if n != 1 {
			t.Fatalf("cell %v listed %d times", c, n)
		}
	}
	for _, off := range pattern {
		if seen[origin.Add(off)] != 1 {
			t.Fatalf("seeded cell %v missing", origin.Add(off))
		}
	}
	if len(cells) != 4 {
		t.Fatalf("population = %d, want 4 (3 seeded + 1 unrelated)", len(cells))
	}
}

func TestClearResetsGeneration(t *testing.T) {
	g := New()
	g.Seed(core.C(0, 0), []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)})
	g.Advance()
	g.Clear()
	if g.Population() != 0 || g.Generation() != 0 {
		t.Fatalf("after clear population=%d generation=%d", g.Population(), g.Generation())
	}
}

func TestEachStopsEarly(t *testing.T) {
	g := New()
	g.Seed(core.C(0, 0), []core.Coord{core.C(0, 0), core.C(5, 0), core.C(9, 0)})
	visited := 0
	g.Each(func(core.Coord) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("visited %d cells, want 1", visited)
	}
}

func TestBounds(t *testing.T) {
	g := New()
	if _, ok := g.Bounds(); ok {
		t.Fatal("empty grid reported bounds")
	}
	g.Seed(core.C(0, 0), []core.Coord{core.C(-2, 3), core.C(4, -1)})
	r, ok := g.Bounds()
	want := core.Rect{MinX: -2, MinY: -1, MaxX: 5, MaxY: 4}
	if !ok || r != want {
		t.Fatalf("bounds = %+v (%v), want %+v", r, ok, want)
	}
}

func TestHashTracksContent(t *testing.T) {
	a, b := New(), New()
	a.Seed(core.C(0, 0), []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)})
	b.Seed(core.C(0, 0), []core.Coord{core.C(2, 0), core.C(0, 0), core.C(1, 0)})
	if a.Hash() != b.Hash() {
		t.Fatal("equal sets hashed differently")
	}
	b.Advance()
	if a.Hash() == b.Hash() {
		t.Fatal("blinker phases hashed equal")
	}
	b.Advance()
	if a.Hash() != b.Hash() {
		t.Fatal("blinker did not return to its original hash")
	}
}

func TestCustomRule(t *testing.T) {
	// HighLife B36/S23 births on six neighbors.
	rule, err := core.ParseRule("B36/S23")
	if err != nil {
		t.Fatal(err)
	}
	g := NewWithRule(rule)
	ring := []core.Coord{
		core.C(-1, -1), core.C(0, -1), core.C(1, -1),
		core.C(-1, 1), core.C(0, 1), core.C(1, 1),
	}
	g.Seed(core.C(0, 0), ring)
	if n := g.Neighbors(core.C(0, 0)); n != 6 {
		t.Fatalf("neighbors = %d, want 6", n)
	}
	g.Advance()
	if !g.IsAlive(core.C(0, 0)) {
		t.Fatal("B6 birth did not happen under HighLife")
	}

	conway := New()
	conway.Seed(core.C(0, 0), ring)
	conway.Advance()
	if conway.IsAlive(core.C(0, 0)) {
		t.Fatal("Conway rule gave birth on six neighbors")
	}
}

// denseStep is a straightforward bounded-array reference. Cells outside the
// w*h box are dead and the box is large enough that nothing escapes it.
func denseStep(cells [][]bool) [][]bool {
	h, w := len(cells), len(cells[0])
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := range next[y] {
			n := denseNeighbors(cells, x, y)
			next[y][x] = (cells[y][x] && (n == 2 || n == 3)) || (!cells[y][x] && n == 3)
		}
	}
	return next
}

func denseNeighbors(cells [][]bool, x, y int) int {
	h, w := len(cells), len(cells[0])
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if cells[ny][nx] {
				n++
			}
		}
	}
	return n
}

func TestMatchesDenseReference(t *testing.T) {
	const (
		size    = 40
		margin  = 12
		steps   = 6
		configs = 25
	)
	for seed := int64(0); seed < configs; seed++ {
		rng := core.NewRNG(seed)
		soup := rng.Soup(core.Rect{MinX: margin, MinY: margin, MaxX: size - margin, MaxY: size - margin}, 0.35)

		g := New()
		dense := make([][]bool, size)
		for y := range dense {
			dense[y] = make([]bool, size)
		}
		// Shift into negative coordinates to exercise the unbounded plane.
		shift := core.C(-size/2, -size/2)
		for _, c := range soup {
			g.Toggle(c.Add(shift))
			dense[c.Y][c.X] = true
		}

		for step := 0; step < steps; step++ {
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					c := core.C(int64(x), int64(y)).Add(shift)
					n := g.Neighbors(c)
					if n < 0 || n > 8 {
						t.Fatalf("seed %d: neighbor count %d out of range", seed, n)
					}
					if want := denseNeighbors(dense, x, y); n != want {
						t.Fatalf("seed %d step %d: neighbors(%d,%d)=%d, want %d", seed, step, x, y, n, want)
					}
					if g.IsAlive(c) != dense[y][x] {
						t.Fatalf("seed %d step %d: cell (%d,%d) alive=%v, want %v", seed, step, x, y, g.IsAlive(c), dense[y][x])
					}
				}
			}
			g.Advance()
			dense = denseStep(dense)
		}
	}
}

func TestLiveCellsIsSnapshot(t *testing.T) {
	g := New()
	g.Seed(core.C(0, 0), []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)})
	snap := g.LiveCells()
	g.Advance()
	slices.SortFunc(snap, func(a, b core.Coord) int { return int(a.X - b.X) })
	want := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)}
	if !slices.Equal(snap, want) {
		t.Fatalf("snapshot changed after advance: %v", snap)
	}
}
