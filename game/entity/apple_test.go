package entity_test

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSpawnRandomAvoidsForbiddenCells(t *testing.T) {
	grid := types.Grid{Cols: 4, Rows: 4}
	forbidden := []types.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}
	taken := make(map[types.Point]bool)
	for _, cell := range forbidden {
		taken[cell] = true
	}

	rng := testRand(1)
	for i := 0; i < 200; i++ {
		apple := entity.SpawnRandom(rng, grid, forbidden)
		assert.False(t, taken[apple.Cell()], "apple spawned on forbidden cell %v", apple.Cell())
		assert.True(t, grid.Contains(apple.Cell()))
	}
}

func TestSpawnRandomFullGridFallsBackToOrigin(t *testing.T) {
	grid := types.Grid{Cols: 2, Rows: 2}
	forbidden := []types.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}

	apple := entity.SpawnRandom(testRand(1), grid, forbidden)
	assert.Equal(t, types.Point{X: 0, Y: 0}, apple.Cell())
}

func TestSpawnRandomSingleFreeCell(t *testing.T) {
	grid := types.Grid{Cols: 2, Rows: 2}
	forbidden := []types.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0},
	}

	apple := entity.SpawnRandom(testRand(7), grid, forbidden)
	assert.Equal(t, types.Point{X: 1, Y: 1}, apple.Cell())
}

func TestSpawnRandomDeterministicWithSeed(t *testing.T) {
	grid := types.Grid{Cols: 10, Rows: 10}
	forbidden := []types.Point{{X: 5, Y: 5}}

	a := entity.SpawnRandom(testRand(42), grid, forbidden)
	b := entity.SpawnRandom(testRand(42), grid, forbidden)
	assert.Equal(t, a.Cell(), b.Cell())
}

func TestNewApple(t *testing.T) {
	apple := entity.NewApple(types.Point{X: 3, Y: 7})
	assert.Equal(t, types.Point{X: 3, Y: 7}, apple.Cell())
}
