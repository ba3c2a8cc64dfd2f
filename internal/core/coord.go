package core

// Coord identifies a cell on the unbounded lattice.
type Coord struct {
	X int64
	Y int64
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int64) Coord { return Coord{X: x, Y: y} }

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// NeighborOffsets lists the eight Moore-neighborhood offsets in row-major order.
var NeighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rect is a half-open region [MinX, MaxX) x [MinY, MaxY) of the lattice.
type Rect struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// Empty reports whether the rect contains no cells.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X < r.MaxX && c.Y >= r.MinY && c.Y < r.MaxY
}

// Dx returns the width of the rect in cells.
func (r Rect) Dx() int64 {
	if r.MaxX < r.MinX {
		return 0
	}
	return r.MaxX - r.MinX
}

// Dy returns the height of the rect in cells.
func (r Rect) Dy() int64 {
	if r.MaxY < r.MinY {
		return 0
	}
	return r.MaxY - r.MinY
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int64 { return r.Dx() * r.Dy() }
