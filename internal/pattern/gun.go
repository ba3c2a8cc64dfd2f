// Package pattern holds the fixed seed stamp loaded by the Gun button.
package pattern

import (
	"math"

	"lifeplane/internal/core"
	"lifeplane/internal/view"
)

// GosperGun lists the relative offsets of Gosper's glider gun. It emits a
// new glider every 30 generations.
var GosperGun = []core.Coord{
	{1, 5}, {1, 6}, {2, 5}, {2, 6}, {11, 5}, {11, 6}, {11, 7}, {12, 4}, {12, 8}, {13, 3},
	{13, 9}, {14, 3}, {14, 9}, {15, 6}, {16, 4}, {16, 8}, {17, 5}, {17, 6}, {17, 7}, {18, 6},
	{21, 3}, {21, 4}, {21, 5}, {22, 3}, {22, 4}, {22, 5}, {23, 2}, {23, 6}, {25, 1}, {25, 2},
	{25, 6}, {25, 7}, {35, 3}, {35, 4}, {36, 3}, {36, 4},
}

// GunOrigin returns where to stamp the gun so it lands a quarter of the way
// into a w*h screen.
func GunOrigin(v *view.Viewport, w, h int) core.Coord {
	return core.Coord{
		X: int64(math.Floor((-v.OffsetX + float64(w)/4) / v.Scale)),
		Y: int64(math.Floor((-v.OffsetY + float64(h)/4) / v.Scale)),
	}
}
