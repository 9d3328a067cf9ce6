package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MinShapeDimension is the smallest width and height SeedShape accepts
const MinShapeDimension = 10

// Shape names a preset starting pattern
type Shape int

const (
	Blinker Shape = iota
	TenCellRow
	Beehive
	Beacon
	Exploder
	SuperExploder
	Glider
)

type offset struct{ dx, dy int }

type shapeDef struct {
	name  string
	cells []offset // relative to the grid midpoint
}

var shapes = map[Shape]shapeDef{
	Blinker: {"blinker", []offset{{-1, 0}, {0, 0}, {1, 0}}},
	TenCellRow: {"ten-cell-row", []offset{
		{-5, 0}, {-4, 0}, {-3, 0}, {-2, 0}, {-1, 0},
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
	}},
	Beehive: {"beehive", []offset{{-1, 0}, {-1, 1}, {0, -1}, {0, 2}, {1, 0}, {1, 1}}},
	Beacon:  {"beacon", []offset{{-1, -1}, {0, -1}, {-1, 0}, {2, 1}, {1, 2}, {2, 2}}},
	Exploder: {"exploder", []offset{
		{0, -1}, {-1, 0}, {0, 0}, {1, 0}, {-1, 1}, {1, 1}, {0, 2},
	}},
	SuperExploder: {"super-exploder", []offset{
		// right wing
		{3, 0}, {4, -1}, {5, -1}, {6, 0}, {5, 1}, {4, 1}, {3, -2},
		// left wing
		{-6, 0}, {-5, -1}, {-4, -1}, {-3, 0}, {-4, 1}, {-5, 1}, {-3, 2},
		// top
		{0, -3}, {-1, -4}, {-1, -5}, {0, -6}, {1, -5}, {1, -4}, {-2, -3},
		// bottom
		{0, 6}, {-1, 5}, {-1, 4}, {0, 3}, {1, 4}, {1, 5}, {2, 3},
	}},
	Glider: {"glider", []offset{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}},
}

// String returns the preset's name as accepted by ParseShape
func (s Shape) String() string {
	if def, ok := shapes[s]; ok {
		return def.name
	}
	return "unknown"
}

// Size returns the number of live cells the shape stamps
func (s Shape) Size() int {
	return len(shapes[s].cells)
}

// ParseShape looks a preset up by name, case-insensitively
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, def := range shapes {
		if def.name == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownShape, "[ParseShape] %q, want one of %s", name, strings.Join(ShapeNames(), ", "))
}

// ShapeNames lists every preset name in sorted order
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for _, def := range shapes {
		names = append(names, def.name)
	}
	sort.Strings(names)
	return names
}

// place resolves the shape's cells around the midpoint of a width x height grid.
// Any cell falling outside the grid fails the whole placement.
func (s Shape) place(width, height int) ([]Point, error) {
	def, ok := shapes[s]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownShape, "[SeedShape] shape: %d", int(s))
	}
	if width < MinShapeDimension || height < MinShapeDimension {
		return nil, errors.Wrapf(ErrGridTooSmall, "[SeedShape] %s needs at least %dx%d, grid is %dx%d",
			def.name, MinShapeDimension, MinShapeDimension, width, height)
	}

	cx, cy := width/2, height/2
	points := make([]Point, 0, len(def.cells))
	for _, o := range def.cells {
		x, y := cx+o.dx, cy+o.dy
		if x < 0 || x >= width || y < 0 || y >= height {
			return nil, errors.Wrapf(ErrGridTooSmall, "[SeedShape] %s cell (%d, %d) falls outside %dx%d",
				def.name, x, y, width, height)
		}
		points = append(points, Point{X: x, Y: y, Alive: true})
	}
	return points, nil
}
