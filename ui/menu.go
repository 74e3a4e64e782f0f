package ui

import (
	"fmt"

	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxNameLen   = 12
	menuMinSpeed = 3
	menuMaxSpeed = 25
)

var difficulties = []game.Difficulty{
	game.DifficultyEasy,
	game.DifficultyNormal,
	game.DifficultyHard,
}

// Menu is the start screen: player name entry, initial speed stepper and
// difficulty cycler. Lives across sessions so the previous choices stick.
type Menu struct {
	playerName string
	nameActive bool
	speed      int
	diffIndex  int
}

func NewMenu() *Menu {
	return &Menu{
		speed:     10,
		diffIndex: 1, // normal
	}
}

// Choices returns what the player picked. Name defaults to "Player" when
// left empty.
func (m *Menu) Choices() (playerName string, speed int, difficulty game.Difficulty) {
	name := m.playerName
	if name == "" {
		name = "Player"
	}
	return name, m.speed, difficulties[m.diffIndex]
}

// layout computes the widget rectangles for the current window size.
func (m *Menu) layout() (name, minus, plus, diff, start rl.Rectangle) {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	centerX := w / 2

	fieldWidth := float32(400)
	fieldHeight := float32(60)
	btn := float32(60)

	rowY := h / 3
	name = rl.Rectangle{X: centerX - fieldWidth/2, Y: rowY, Width: fieldWidth, Height: fieldHeight}
	rowY += 130
	minus = rl.Rectangle{X: centerX - fieldWidth/2, Y: rowY, Width: btn, Height: btn}
	plus = rl.Rectangle{X: centerX + fieldWidth/2 - btn, Y: rowY, Width: btn, Height: btn}
	rowY += 130
	diff = rl.Rectangle{X: centerX - fieldWidth/2, Y: rowY, Width: fieldWidth, Height: fieldHeight}
	rowY += 130
	start = rl.Rectangle{X: centerX - 150, Y: rowY, Width: 300, Height: 70}
	return
}

// Update handles one frame of menu input. Returns start=true when the
// player hits the start button, quit=true on Esc.
func (m *Menu) Update() (start, quit bool) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		return false, true
	}

	if m.nameActive {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			if len(m.playerName) < maxNameLen && ch >= 32 {
				m.playerName += string(ch)
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) && len(m.playerName) > 0 {
			m.playerName = m.playerName[:len(m.playerName)-1]
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			m.nameActive = false
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		nameRect, minusRect, plusRect, diffRect, startRect := m.layout()

		m.nameActive = rl.CheckCollisionPointRec(mouse, nameRect)

		switch {
		case rl.CheckCollisionPointRec(mouse, minusRect):
			if m.speed > menuMinSpeed {
				m.speed--
			}
		case rl.CheckCollisionPointRec(mouse, plusRect):
			if m.speed < menuMaxSpeed {
				m.speed++
			}
		case rl.CheckCollisionPointRec(mouse, diffRect):
			m.diffIndex = (m.diffIndex + 1) % len(difficulties)
		case rl.CheckCollisionPointRec(mouse, startRect):
			return true, false
		}
	}

	return false, false
}

// Draw renders the menu frame.
func (m *Menu) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 30, G: 120, B: 60, A: 255})

	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	nameRect, minusRect, plusRect, diffRect, startRect := m.layout()

	title := "SNAKE"
	rl.DrawText(title, (w-rl.MeasureText(title, 72))/2, h/5-36, 72, rl.White)

	label := func(text string, rect rl.Rectangle) {
		rl.DrawText(text, int32(rect.X), int32(rect.Y)-34, 26, rl.Black)
	}

	label("Player name:", nameRect)
	fieldColor := rl.Color{R: 230, G: 230, B: 230, A: 255}
	if m.nameActive {
		fieldColor = rl.White
	}
	rl.DrawRectangleRounded(nameRect, 0.3, 8, fieldColor)
	nameText := m.playerName
	nameColor := rl.Black
	if nameText == "" {
		nameText = "Enter name..."
		nameColor = rl.Gray
	}
	rl.DrawText(nameText, int32(nameRect.X)+15, int32(nameRect.Y)+15, 30, nameColor)

	label("Starting speed:", minusRect)
	dark := rl.Color{R: 50, G: 50, B: 50, A: 255}
	rl.DrawRectangleRounded(minusRect, 0.3, 8, dark)
	rl.DrawRectangleRounded(plusRect, 0.3, 8, dark)
	centerText("-", minusRect, 30, rl.White)
	centerText("+", plusRect, 30, rl.White)
	valueRect := rl.Rectangle{
		X:      minusRect.X + minusRect.Width + 10,
		Y:      minusRect.Y,
		Width:  plusRect.X - minusRect.X - minusRect.Width - 20,
		Height: minusRect.Height,
	}
	rl.DrawRectangleRounded(valueRect, 0.3, 8, fieldColor)
	centerText(fmt.Sprintf("%d", m.speed), valueRect, 30, rl.Black)

	label("Difficulty:", diffRect)
	rl.DrawRectangleRounded(diffRect, 0.3, 8, fieldColor)
	centerText(string(difficulties[m.diffIndex]), diffRect, 30, rl.Black)

	rl.DrawRectangleRounded(startRect, 0.3, 8, rl.Color{R: 70, G: 160, B: 70, A: 255})
	centerText("Start", startRect, 34, rl.White)

	hint := "ESC - quit, click the name field to type"
	rl.DrawText(hint, 10, h-28, 20, rl.Black)

	rl.EndDrawing()
}

func centerText(text string, rect rl.Rectangle, fontSize int32, color rl.Color) {
	rl.DrawText(text,
		int32(rect.X)+(int32(rect.Width)-rl.MeasureText(text, fontSize))/2,
		int32(rect.Y)+(int32(rect.Height)-fontSize)/2,
		fontSize, color)
}
