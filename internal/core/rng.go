package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Soup returns the cells of area that are alive in a random fill of the given
// density, in row-major order.
func (r *RNG) Soup(area Rect, density float64) []Coord {
	var cells []Coord
	for y := area.MinY; y < area.MaxY; y++ {
		for x := area.MinX; x < area.MaxX; x++ {
			if r.Chance(density) {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}
