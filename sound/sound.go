// Package sound plays the eat and game-over cues. Everything here is
// optional: a missing audio device or missing files degrade to silence and
// game logic never notices.
package sound

import (
	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager holds the loaded sound effects. The zero value is silent.
type Manager struct {
	ready    bool
	eat      rl.Sound
	gameOver rl.Sound
}

// NewManager initializes the audio device and loads the cue files. Load
// failures leave the corresponding cue silent.
func NewManager(eatPath, gameOverPath string) *Manager {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return &Manager{}
	}
	return &Manager{
		ready:    true,
		eat:      rl.LoadSound(eatPath),
		gameOver: rl.LoadSound(gameOverPath),
	}
}

// Play triggers the cue for a session event, if one is loaded.
func (m *Manager) Play(event game.Event) {
	if m == nil || !m.ready {
		return
	}
	switch event {
	case game.EventAte:
		m.play(m.eat)
	case game.EventDied, game.EventWon:
		m.play(m.gameOver)
	}
}

func (m *Manager) play(s rl.Sound) {
	if s.FrameCount > 0 {
		rl.PlaySound(s)
	}
}

// Close unloads the sounds and shuts the audio device down.
func (m *Manager) Close() {
	if m == nil || !m.ready {
		return
	}
	rl.UnloadSound(m.eat)
	rl.UnloadSound(m.gameOver)
	rl.CloseAudioDevice()
}
