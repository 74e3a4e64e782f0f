package entity_test

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
)

func TestMoveKeepsLengthWithoutGrowth(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5})

	for i := 0; i < 10; i++ {
		s.Move()
		assert.Equal(t, 1, s.Len())
	}
}

func TestMoveAdvancesHead(t *testing.T) {
	// 10x10 grid, start (5,5), heading right: three moves land on (8,5).
	s := entity.NewSnake(types.Point{X: 5, Y: 5})

	s.Move()
	s.Move()
	s.Move()

	assert.Equal(t, types.Point{X: 8, Y: 5}, s.Head())
	assert.Equal(t, 1, s.Len())
}

func TestGrowAppliesOncePerMove(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5})
	s.Grow(3)

	// No immediate effect.
	assert.Equal(t, 1, s.Len())

	s.Move()
	assert.Equal(t, 2, s.Len())
	s.Move()
	assert.Equal(t, 3, s.Len())
	s.Move()
	assert.Equal(t, 4, s.Len())

	// Growth exhausted: length stays put.
	s.Move()
	assert.Equal(t, 4, s.Len())
}

func TestGrowBodyOrderHeadFirst(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5})
	s.Grow(3)

	s.Move()
	s.Move()
	s.Move()

	want := []types.Point{
		{X: 8, Y: 5},
		{X: 7, Y: 5},
		{X: 6, Y: 5},
		{X: 5, Y: 5},
	}
	assert.Equal(t, want, s.Cells())
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		name    string
		dir     types.Point
		wantDir types.Point
	}{
		{"inverse is rejected", types.DirLeft, types.DirRight},
		{"zero vector is rejected", types.Point{}, types.DirRight},
		{"perpendicular is accepted", types.DirUp, types.DirUp},
		{"same direction is accepted", types.DirRight, types.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSnake(types.Point{X: 5, Y: 5})
			s.ChangeDirection(tt.dir)
			assert.Equal(t, tt.wantDir, s.Direction())
		})
	}
}

func TestRejectedReversalKeepsMoving(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5})

	s.ChangeDirection(types.DirLeft)
	s.Move()

	// Still heading right.
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.Head())
}

func TestCellsReturnsSnapshot(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5})

	cells := s.Cells()
	cells[0] = types.Point{X: 99, Y: 99}

	assert.Equal(t, types.Point{X: 5, Y: 5}, s.Head())
}

func TestHitsSelf(t *testing.T) {
	fresh := entity.NewSnake(types.Point{X: 5, Y: 5})
	assert.False(t, fresh.HitsSelf())

	// Grow 4 segments, then walk a tight square so the head comes back
	// onto the tail cell.
	s := entity.NewSnake(types.Point{X: 5, Y: 5})
	s.Grow(4)
	s.Move() // (6,5)
	s.ChangeDirection(types.DirDown)
	s.Move() // (6,6)
	s.ChangeDirection(types.DirLeft)
	s.Move() // (5,6)
	s.ChangeDirection(types.DirUp)
	assert.False(t, s.HitsSelf())
	s.Move() // (5,5) again, still occupied by the tail
	assert.True(t, s.HitsSelf())
}
