package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionManager resolves wall and self collisions for a single snake on
// a fixed grid.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position lies outside the grid bounds.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks if the snake's head overlaps its own body.
// Call only after the snake has moved.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsSelf()
}

// IsAppleCollision checks if the snake's head is on the apple's cell.
func (cm *CollisionManager) IsAppleCollision(snake *entity.Snake, apple entity.Apple) bool {
	return snake.Head() == apple.Cell()
}

// BoardFull reports whether the snake occupies every cell of the grid,
// leaving no room for an apple.
func (cm *CollisionManager) BoardFull(snake *entity.Snake) bool {
	return snake.Len() >= cm.grid.CellCount()
}
