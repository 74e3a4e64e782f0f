package game

import (
	"log"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// State is the session's lifecycle phase.
type State int

const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateWon
)

// Event is what happened during a tick, for the presentation layer to react
// to (sound cues). Game logic never depends on anyone observing these.
type Event int

const (
	EventNone Event = iota
	EventAte
	EventDied
	EventWon
)

// Session runs exactly one play-through: a fresh snake and apple, a score,
// and a terminal state. A new game is a new Session.
type Session struct {
	ID string

	cfg          Config
	rng          *rand.Rand
	snake        *entity.Snake
	apple        entity.Apple
	collisionMgr *manager.CollisionManager
	scoreMgr     *manager.ScoreManager

	state     State
	score     int
	speed     int
	bestScore int
	persisted bool
}

// NewSession builds a ready session from the config. The random source is
// injected so spawn placement is reproducible under test.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	snake := entity.NewSnake(types.Point{X: cfg.Grid.Cols / 2, Y: cfg.Grid.Rows / 2})
	scoreMgr := manager.NewScoreManager(cfg.ScorePath)

	return &Session{
		ID:           uuid.New().String(),
		cfg:          cfg,
		rng:          rng,
		snake:        snake,
		apple:        entity.SpawnRandom(rng, cfg.Grid, snake.Cells()),
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		scoreMgr:     scoreMgr,
		state:        StateReady,
		speed:        cfg.initialSpeed(),
		bestScore:    scoreMgr.BestScore(),
	}
}

// Start moves the session from Ready into Playing. No-op in any other
// state.
func (s *Session) Start() {
	if s.state == StateReady {
		s.state = StatePlaying
	}
}

// TogglePause flips between Playing and Paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Steer applies a direction intent to the snake. Ignored outside Playing;
// the latest accepted intent before the next Tick wins.
func (s *Session) Steer(dir types.Point) {
	if s.state != StatePlaying {
		return
	}
	s.snake.ChangeDirection(dir)
}

// AdjustSpeed nudges the step rate by delta ticks/second, clamped to the
// [MinSpeed, MaxSpeed] bounds. Allowed in any state.
func (s *Session) AdjustSpeed(delta int) {
	s.speed = clampSpeed(s.speed + delta)
}

// Tick advances the simulation by one step. Outside Playing it does
// nothing. The returned event tells the caller what, if anything, to play.
func (s *Session) Tick() Event {
	if s.state != StatePlaying {
		return EventNone
	}

	s.snake.Move()

	if s.collisionMgr.IsWallCollision(s.snake.Head()) {
		s.finish(StateGameOver)
		return EventDied
	}
	if s.collisionMgr.IsSelfCollision(s.snake) {
		s.finish(StateGameOver)
		return EventDied
	}

	if s.collisionMgr.IsAppleCollision(s.snake, s.apple) {
		s.score++
		s.snake.Grow(1)

		if s.score%s.cfg.applesPerSpeedup() == 0 {
			s.speed = clampSpeed(s.speed + 1)
		}

		// A body covering the whole grid leaves no cell to spawn on:
		// the run is won, not stuck.
		if s.collisionMgr.BoardFull(s.snake) {
			s.finish(StateWon)
			return EventWon
		}
		s.apple = entity.SpawnRandom(s.rng, s.cfg.Grid, s.snake.Cells())
		return EventAte
	}

	return EventNone
}

// finish moves to a terminal state and persists the result exactly once.
func (s *Session) finish(terminal State) {
	s.state = terminal
	if s.persisted {
		return
	}
	s.persisted = true

	record := manager.ScoreRecord{
		Timestamp:  time.Now(),
		PlayerName: s.cfg.PlayerName,
		Score:      s.score,
	}
	if err := s.scoreMgr.Append(record); err != nil {
		log.Printf("could not save score: %v", err)
	}
	if s.score > s.bestScore {
		s.bestScore = s.score
	}
}

// Interval returns the wall-clock duration of one simulation step at the
// current speed.
func (s *Session) Interval() time.Duration {
	return time.Second / time.Duration(s.speed)
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Over reports whether the session reached a terminal state.
func (s *Session) Over() bool {
	return s.state == StateGameOver || s.state == StateWon
}

// Score returns the apples eaten this run.
func (s *Session) Score() int {
	return s.score
}

// BestScore returns the highest score on record, including this run once it
// ends.
func (s *Session) BestScore() int {
	return s.bestScore
}

// Speed returns the current step rate in ticks per second.
func (s *Session) Speed() int {
	return s.speed
}

// SnakeCells returns a snapshot of the snake body, head first.
func (s *Session) SnakeCells() []types.Point {
	return s.snake.Cells()
}

// AppleCell returns the apple's position.
func (s *Session) AppleCell() types.Point {
	return s.apple.Cell()
}

// Grid returns the playing field dimensions.
func (s *Session) Grid() types.Grid {
	return s.cfg.Grid
}

// PlayerName returns the configured player name.
func (s *Session) PlayerName() string {
	return s.cfg.PlayerName
}
