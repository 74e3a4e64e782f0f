package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Intents is everything the player asked for this frame, decoupled from key
// codes so the session controller never sees raylib.
type Intents struct {
	Direction  *types.Point
	Pause      bool
	SpeedDelta int
	Quit       bool
}

// PollIntents samples the keyboard once. Called exactly once per frame;
// when several direction keys are pressed in one frame the last one checked
// wins, matching "latest intent before the next tick wins".
func PollIntents() Intents {
	var in Intents

	if rl.IsKeyPressed(rl.KeyEscape) {
		in.Quit = true
	}
	if rl.IsKeyPressed(rl.KeyP) {
		in.Pause = true
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		in.SpeedDelta++
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		in.SpeedDelta--
	}

	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW) {
		in.Direction = &types.DirUp
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS) {
		in.Direction = &types.DirDown
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA) {
		in.Direction = &types.DirLeft
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD) {
		in.Direction = &types.DirRight
	}

	return in
}
