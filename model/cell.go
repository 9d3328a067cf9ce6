package model

// Cell is a single grid position. It has no identity beyond its coordinates.
type Cell struct {
	alive bool
}

// Alive reports whether the cell is live
func (c Cell) Alive() bool { return c.alive }

// Row is an ordered run of cells, one per column
type Row []Cell

func newRows(width, height int) []Row {
	rows := make([]Row, height)
	for y := range rows {
		rows[y] = make(Row, width)
	}
	return rows
}

// Point is a grid position together with the state of the cell at it.
type Point struct {
	X, Y  int
	Alive bool
}
