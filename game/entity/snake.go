package entity

import (
	"snake-classic/game/types"
)

// Snake is the player-controlled snake. The body is stored head-first:
// Body[0] is the head, Body[len-1] the tail. Length never drops below 1.
type Snake struct {
	body        []types.Point
	direction   types.Point
	growPending int
}

// NewSnake creates a length-1 snake at startPos, heading right.
func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		body:      []types.Point{startPos},
		direction: types.DirRight,
	}
}

// ChangeDirection replaces the current heading. The exact inverse of the
// current direction is rejected so the snake cannot fold onto its own neck,
// and the zero vector is ignored. The latest accepted call before the next
// Move wins.
func (s *Snake) ChangeDirection(dir types.Point) {
	if dir.IsZero() || s.direction.IsInverse(dir) {
		return
	}
	s.direction = dir
}

// Move advances the snake one cell in its current direction. The new head
// is prepended; if growth is pending one unit of it is consumed and the
// tail stays, otherwise the tail cell is dropped. This is the only place
// pending growth is applied, at most one unit per tick.
func (s *Snake) Move() {
	newHead := s.body[0].Add(s.direction)
	s.body = append([]types.Point{newHead}, s.body...)

	if s.growPending > 0 {
		s.growPending--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow queues amount segments of growth. The body is unchanged until
// subsequent Move calls consume the counter.
func (s *Snake) Grow(amount int) {
	s.growPending += amount
}

// Head returns the current head cell.
func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Cells returns a snapshot copy of the full body, head first. Callers may
// keep or mutate it freely.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.body))
	copy(cells, s.body)
	return cells
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() types.Point {
	return s.direction
}

// HitsSelf reports whether the head occupies any non-head body cell.
// Meaningful only right after Move.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, cell := range s.body[1:] {
		if cell == head {
			return true
		}
	}
	return false
}
