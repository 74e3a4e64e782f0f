package main

import (
	"flag"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/sound"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	cols := flag.Int("cols", 15, "Grid columns")
	rows := flag.Int("rows", 15, "Grid rows")
	results := flag.String("results", "results.txt", "Path of the score log")
	flag.Parse()

	rl.InitWindow(900, 960, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0) // Esc is handled per screen, not as a hard exit
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	sounds := sound.NewManager("sounds/eat.wav", "sounds/gameover.wav")
	defer sounds.Close()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	menu := ui.NewMenu()
	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		start, quit := menu.Update()
		menu.Draw()
		if quit {
			return
		}
		if !start {
			continue
		}

		playerName, speed, difficulty := menu.Choices()
		cfg := game.Config{
			Grid:       types.Grid{Cols: *cols, Rows: *rows},
			PlayerName: playerName,
			BaseSpeed:  speed,
			Difficulty: difficulty,
			ScorePath:  *results,
		}

		for again := true; again && !rl.WindowShouldClose(); {
			again = runSession(cfg, rng, renderer, sounds)
		}
	}
}

// runSession plays one game through to its end. Returns true when the
// player asked to play again with the same settings, false to go back to
// the menu.
func runSession(cfg game.Config, rng *rand.Rand, renderer *ui.Renderer, sounds *sound.Manager) bool {
	session := game.NewSession(cfg, rng)
	session.Start()
	lastStep := time.Now()

	for !rl.WindowShouldClose() {
		in := ui.PollIntents()
		if in.Quit {
			return false
		}
		if in.Pause {
			session.TogglePause()
		}
		if in.SpeedDelta != 0 {
			session.AdjustSpeed(in.SpeedDelta)
		}
		if in.Direction != nil {
			session.Steer(*in.Direction)
		}

		// The frame runs at render FPS; the simulation steps at the
		// session's own rate.
		if session.State() == game.StatePlaying && time.Since(lastStep) >= session.Interval() {
			sounds.Play(session.Tick())
			lastStep = time.Now()
		}

		if session.Over() && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			restart, quit := renderer.GameOverButtons()
			mouse := rl.GetMousePosition()
			if rl.CheckCollisionPointRec(mouse, restart) {
				return true
			}
			if rl.CheckCollisionPointRec(mouse, quit) {
				return false
			}
		}

		renderer.Draw(session)
	}
	return false
}
