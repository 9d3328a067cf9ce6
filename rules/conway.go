package rules

// Birth and survival counts for B3/S23.
const (
	BirthNeighbors   = 3
	SurviveNeighbors = 2
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == SurviveNeighbors) || neighbors == BirthNeighbors
}
