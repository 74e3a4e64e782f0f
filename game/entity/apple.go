package entity

import (
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// Apple occupies a single grid cell. An apple is replaced on consumption,
// never moved, so SpawnRandom is a factory rather than a mutator.
type Apple struct {
	pos types.Point
}

// NewApple creates an apple at the given cell.
func NewApple(pos types.Point) Apple {
	return Apple{pos: pos}
}

// SpawnRandom places a new apple uniformly at random on a free cell of the
// grid, excluding forbidden (typically the snake body). If the grid is fully
// occupied the apple degenerates to (0,0); the session is expected to detect
// a full board before relying on that placement.
func SpawnRandom(rng *rand.Rand, grid types.Grid, forbidden []types.Point) Apple {
	occupied := make(map[types.Point]struct{}, len(forbidden))
	for _, cell := range forbidden {
		occupied[cell] = struct{}{}
	}

	free := make([]types.Point, 0, grid.CellCount()-len(occupied))
	for x := 0; x < grid.Cols; x++ {
		for y := 0; y < grid.Rows; y++ {
			cell := types.Point{X: x, Y: y}
			if _, taken := occupied[cell]; !taken {
				free = append(free, cell)
			}
		}
	}

	if len(free) == 0 {
		return Apple{pos: types.Point{X: 0, Y: 0}}
	}
	return Apple{pos: free[rng.Intn(len(free))]}
}

// Cell returns the cell the apple occupies.
func (a Apple) Cell() types.Point {
	return a.pos
}
