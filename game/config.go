package game

import "snake-classic/game/types"

// Difficulty selects the initial speed floor and how often the game speeds
// up.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Speed bounds shared by every difficulty. Speed is the simulation step
// rate in ticks per second.
const (
	MinSpeed = 3
	MaxSpeed = 30
)

// Config carries everything a session needs: grid dimensions, player
// parameters and the score log location. Passed in explicitly, never read
// from globals.
type Config struct {
	Grid       types.Grid
	PlayerName string
	BaseSpeed  int
	Difficulty Difficulty
	ScorePath  string
}

// initialSpeed applies the difficulty's speed floor to the chosen base
// speed.
func (c Config) initialSpeed() int {
	speed := c.BaseSpeed
	switch c.Difficulty {
	case DifficultyEasy:
		if speed < 5 {
			speed = 5
		}
	case DifficultyHard:
		if speed < 15 {
			speed = 15
		}
	}
	return clampSpeed(speed)
}

// applesPerSpeedup returns how many apples must be eaten before the game
// speeds up by one.
func (c Config) applesPerSpeedup() int {
	switch c.Difficulty {
	case DifficultyEasy:
		return 7
	case DifficultyHard:
		return 4
	default:
		return 5
	}
}

func clampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
