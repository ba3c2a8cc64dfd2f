package core

// CellReader is the read side of a live-cell plane, used at draw time.
type CellReader interface {
	IsAlive(c Coord) bool
	// Each visits live cells in unspecified order until fn returns false.
	Each(fn func(Coord) bool)
	Population() int
}

// CellEditor groups the mutators driven by input handling and the tick loop.
type CellEditor interface {
	Toggle(c Coord)
	Seed(origin Coord, pattern []Coord)
	Clear()
	Advance()
}

// Plane is a full read/write live-cell plane.
type Plane interface {
	CellReader
	CellEditor
	Generation() int
	Neighbors(c Coord) int
}
