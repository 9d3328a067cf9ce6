package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Grid is a fixed-size board of cells with hard edges.
// Cells are addressed as (x, y) where x is the column and y is the row.
type Grid struct {
	width   int
	height  int
	rows    []Row
	next    []Row // next-generation buffer, allocated on first Advance
	workers int

	// cached content hash, cleared on every mutation
	hash      string
	hashValid bool
}

// GridOption configures a Grid at construction
type GridOption func(*Grid)

// WithWorkerCount sets how many goroutines Advance fans out to.
// Values below 1 fall back to runtime.NumCPU().
func WithWorkerCount(n int) GridOption {
	return func(g *Grid) {
		if n > 0 {
			g.workers = n
		}
	}
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int, opts ...GridOption) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width: %d, height: %d", width, height)
	}
	g := &Grid{
		width:   width,
		height:  height,
		rows:    newRows(width, height),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfRange, "[Get] (%d, %d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.rows[y][x].alive, nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d, %d) outside %dx%d", x, y, g.width, g.height)
	}
	g.rows[y][x].alive = alive
	g.hashValid = false
	return nil
}

// Reset kills every cell
func (g *Grid) Reset() {
	for y := range g.rows {
		clear(g.rows[y])
	}
	g.hashValid = false
}

// resize reshapes the grid to new dimensions, reusing storage where it can.
// Used by the pool; all cells end up dead.
func (g *Grid) resize(width, height int) {
	g.width = width
	g.height = height
	if g.workers == 0 {
		g.workers = runtime.NumCPU()
	}
	if len(g.rows) != height {
		g.rows = make([]Row, height)
	}
	for y := range g.rows {
		if len(g.rows[y]) != width {
			g.rows[y] = make(Row, width)
		} else {
			clear(g.rows[y])
		}
	}
	g.next = nil
	g.hashValid = false
}

// Clone returns an independent copy with the same dimensions and cell states
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:     g.width,
		height:    g.height,
		rows:      newRows(g.width, g.height),
		workers:   g.workers,
		hash:      g.hash,
		hashValid: g.hashValid,
	}
	for y := range g.rows {
		copy(c.rows[y], g.rows[y])
	}
	return c
}

// CloneInto copies this grid's cells into dst, reshaping dst if needed
func (g *Grid) CloneInto(dst *Grid) *Grid {
	if dst.width != g.width || dst.height != g.height || len(dst.rows) != g.height {
		dst.resize(g.width, g.height)
	}
	for y := range g.rows {
		copy(dst.rows[y], g.rows[y])
	}
	dst.workers = g.workers
	dst.hash, dst.hashValid = g.hash, g.hashValid
	return dst
}

// CountNeighbors counts living neighbors, clipping the 3x3 window at the edges
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.rows[ny][nx].alive {
				count++
			}
		}
	}

	return count
}

// Advance replaces the grid with its next generation.
//
// Rows are split into bands, one goroutine per band. Every band reads only
// the current rows and writes only its own rows of the next buffer, so no
// locking is needed; the buffers are swapped once all bands have joined.
func (g *Grid) Advance() {
	if g.next == nil {
		g.next = newRows(g.width, g.height)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(max(g.workers, 1), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				out := g.next[y]
				for x := range g.width {
					out[x].alive = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.rows[y][x].alive)
				}
			}
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()

	g.rows, g.next = g.next, g.rows
	g.hashValid = false
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.rows {
		for _, c := range g.rows[y] {
			if c.alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and the same
// state at every position.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	if g.hashValid && other.hashValid && g.hash != other.hash {
		return false
	}
	for y := range g.rows {
		a, b := g.rows[y], other.rows[y]
		for x := range a {
			if a[x].alive != b[x].alive {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the cell states, cached until the next mutation
func (g *Grid) Hash() string {
	if g.hashValid {
		return g.hash
	}
	h := md5.New()
	buf := make([]byte, g.width)
	for y := range g.rows {
		for x, c := range g.rows[y] {
			if c.alive {
				buf[x] = 1
			} else {
				buf[x] = 0
			}
		}
		h.Write(buf)
	}
	g.hash = fmt.Sprintf("%x", h.Sum(nil))
	g.hashValid = true
	return g.hash
}

// Diff returns the cells whose state differs from prev, with their state in g.
// Grids of different dimensions yield every live cell of g.
func (g *Grid) Diff(prev *Grid) []Point {
	var changed []Point
	sameShape := prev != nil && prev.width == g.width && prev.height == g.height
	for y := range g.rows {
		for x, c := range g.rows[y] {
			if sameShape && prev.rows[y][x].alive == c.alive {
				continue
			}
			if !sameShape && !c.alive {
				continue
			}
			changed = append(changed, Point{X: x, Y: y, Alive: c.alive})
		}
	}
	return changed
}

// LiveCells lists every living cell in row-major order
func (g *Grid) LiveCells() []Point {
	var live []Point
	for y := range g.rows {
		for x, c := range g.rows[y] {
			if c.alive {
				live = append(live, Point{X: x, Y: y, Alive: true})
			}
		}
	}
	return live
}
