package render

import "lifeplane/internal/core"

// VisibleCells returns the live cells of r inside area. When the population
// is smaller than the area it walks the population; otherwise it checks every
// cell of the area. Both give the same set; order is unspecified.
func VisibleCells(r core.CellReader, area core.Rect, buf []core.Coord) []core.Coord {
	buf = buf[:0]
	if area.Empty() {
		return buf
	}
	if int64(r.Population()) < area.Area() {
		r.Each(func(c core.Coord) bool {
			if area.Contains(c) {
				buf = append(buf, c)
			}
			return true
		})
		return buf
	}
	for y := area.MinY; y < area.MaxY; y++ {
		for x := area.MinX; x < area.MaxX; x++ {
			c := core.Coord{X: x, Y: y}
			if r.IsAlive(c) {
				buf = append(buf, c)
			}
		}
	}
	return buf
}
