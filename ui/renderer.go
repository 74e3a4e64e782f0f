package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 70 // Reserved strip above the grid for score text
)

// Board palette, matching the classic checkerboard field.
var (
	lightGreen = rl.Color{R: 170, G: 215, B: 81, A: 255}
	darkGreen  = rl.Color{R: 162, G: 209, B: 73, A: 255}
	headBlue   = rl.Color{R: 0, G: 120, B: 255, A: 255}
	bodyBlue   = rl.Color{R: 0, G: 70, B: 200, A: 255}
	appleRed   = rl.Color{R: 220, G: 0, B: 0, A: 255}
	appleShine = rl.Color{R: 255, G: 150, B: 150, A: 255}
	stemBrown  = rl.Color{R: 120, G: 70, B: 15, A: 255}
	leafGreen  = rl.Color{R: 0, G: 170, B: 0, A: 255}
	mouthBlue  = rl.Color{R: 0, G: 0, B: 150, A: 255}
	overlayDim = rl.Color{R: 0, G: 0, B: 0, A: 120}
)

// Renderer draws a session into the current window. Dimensions are
// recomputed every frame so window resizing just works.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	cellSize     int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// UpdateDimensions recomputes the cell size and grid offsets for the
// current window size, keeping cells square and the board centered.
func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - hudHeight

	cellW := availableWidth / int32(grid.Cols)
	cellH := availableHeight / int32(grid.Rows)
	r.cellSize = min32(cellW, cellH)

	r.gridWidth = r.cellSize * int32(grid.Cols)
	r.gridHeight = r.cellSize * int32(grid.Rows)
	r.offsetX = (r.screenWidth - r.gridWidth) / 2
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-r.gridHeight)/2
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame of the session: board, apple, snake, HUD and any
// state overlay.
func (r *Renderer) Draw(s *game.Session) {
	r.UpdateDimensions(s.Grid())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBoard(s.Grid())
	r.drawApple(s.AppleCell())
	r.drawSnake(s.SnakeCells())
	r.drawHUD(s)

	switch s.State() {
	case game.StatePaused:
		r.drawPauseOverlay()
	case game.StateGameOver, game.StateWon:
		r.drawGameOverOverlay(s)
	}

	rl.EndDrawing()
}

// cellRect maps a grid cell to its on-screen rectangle.
func (r *Renderer) cellRect(cell types.Point) (x, y int32) {
	return r.offsetX + int32(cell.X)*r.cellSize, r.offsetY + int32(cell.Y)*r.cellSize
}

func (r *Renderer) drawBoard(grid types.Grid) {
	for x := 0; x < grid.Cols; x++ {
		for y := 0; y < grid.Rows; y++ {
			color := lightGreen
			if (x+y)%2 != 0 {
				color = darkGreen
			}
			px, py := r.cellRect(types.Point{X: x, Y: y})
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, color)
		}
	}
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, r.gridWidth+2, r.gridHeight+2, rl.Black)
}

func (r *Renderer) drawSnake(body []types.Point) {
	for i := len(body) - 1; i >= 1; i-- {
		px, py := r.cellRect(body[i])
		rl.DrawRectangle(px, py, r.cellSize, r.cellSize, bodyBlue)
	}
	if len(body) > 0 {
		r.drawHead(body[0])
	}
}

// drawHead draws the head square with eyes, pupils and a mouth.
func (r *Renderer) drawHead(head types.Point) {
	px, py := r.cellRect(head)
	rl.DrawRectangle(px, py, r.cellSize, r.cellSize, headBlue)

	eyeSize := r.cellSize / 4
	eyeOffset := r.cellSize / 6

	leftEyeX := px + eyeOffset
	rightEyeX := px + r.cellSize - eyeOffset - eyeSize
	eyeY := py + eyeOffset
	rl.DrawRectangle(leftEyeX, eyeY, eyeSize, eyeSize, rl.White)
	rl.DrawRectangle(rightEyeX, eyeY, eyeSize, eyeSize, rl.White)

	pupilSize := max32(1, eyeSize/3)
	pupilPad := (eyeSize - pupilSize) / 2
	rl.DrawRectangle(leftEyeX+pupilPad, eyeY+pupilPad, pupilSize, pupilSize, rl.Black)
	rl.DrawRectangle(rightEyeX+pupilPad, eyeY+pupilPad, pupilSize, pupilSize, rl.Black)

	mouthHeight := max32(1, r.cellSize/8)
	rl.DrawRectangle(px+r.cellSize/4, py+r.cellSize-mouthHeight-2, r.cellSize/2, mouthHeight, mouthBlue)
}

// drawApple draws a stylized apple: circle with a highlight, a stem and a
// leaf.
func (r *Renderer) drawApple(cell types.Point) {
	px, py := r.cellRect(cell)
	centerX := px + r.cellSize/2
	centerY := py + r.cellSize/2
	radius := r.cellSize/2 - 3

	rl.DrawCircle(centerX, centerY, float32(radius), appleRed)
	rl.DrawCircle(centerX-radius/3, centerY-radius/3, float32(max32(1, radius/4)), appleShine)

	stemWidth := max32(2, r.cellSize/10)
	stemHeight := max32(3, r.cellSize/4)
	stemX := centerX - stemWidth/2
	stemY := centerY - radius - stemHeight + 2
	rl.DrawRectangle(stemX, stemY, stemWidth, stemHeight, stemBrown)

	rl.DrawTriangle(
		rl.Vector2{X: float32(stemX + stemWidth), Y: float32(stemY)},
		rl.Vector2{X: float32(stemX + stemWidth), Y: float32(stemY + r.cellSize/5)},
		rl.Vector2{X: float32(stemX + stemWidth + r.cellSize/4), Y: float32(stemY + r.cellSize/6)},
		leafGreen)
}

func (r *Renderer) drawHUD(s *game.Session) {
	fontSize := int32(28)
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score()), borderPadding, 8, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", s.BestScore()), borderPadding, 12+fontSize, fontSize, rl.White)

	hint := "P - pause   +/- - speed   ESC - quit"
	hintSize := int32(18)
	rl.DrawText(hint, r.screenWidth-rl.MeasureText(hint, hintSize)-borderPadding, 8, hintSize, rl.Gray)
	speedText := fmt.Sprintf("Speed: %d", s.Speed())
	rl.DrawText(speedText, r.screenWidth-rl.MeasureText(speedText, hintSize)-borderPadding, 12+hintSize, hintSize, rl.Gray)
}

func (r *Renderer) drawPauseOverlay() {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, overlayDim)
	text := "Paused (P to resume)"
	fontSize := int32(36)
	rl.DrawText(text,
		(r.screenWidth-rl.MeasureText(text, fontSize))/2,
		r.screenHeight/2-fontSize/2,
		fontSize, rl.White)
}

// GameOverButtons returns the restart and quit button rectangles for the
// current window size, shared by drawing and hit testing.
func (r *Renderer) GameOverButtons() (restart, quit rl.Rectangle) {
	width := float32(260)
	height := float32(60)
	x := (float32(r.screenWidth) - width) / 2
	restartY := float32(r.screenHeight)/2 + 40
	restart = rl.Rectangle{X: x, Y: restartY, Width: width, Height: height}
	quit = rl.Rectangle{X: x, Y: restartY + height + 20, Width: width, Height: height}
	return restart, quit
}

func (r *Renderer) drawGameOverOverlay(s *game.Session) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, overlayDim)

	title := "Game over"
	if s.State() == game.StateWon {
		title = "You won!"
	}
	fontSize := int32(42)
	rl.DrawText(title,
		(r.screenWidth-rl.MeasureText(title, fontSize))/2,
		r.screenHeight/2-80,
		fontSize, rl.White)

	scoreText := fmt.Sprintf("%s scored %d", s.PlayerName(), s.Score())
	rl.DrawText(scoreText,
		(r.screenWidth-rl.MeasureText(scoreText, 28))/2,
		r.screenHeight/2-30,
		28, rl.White)

	restart, quit := r.GameOverButtons()
	drawButton(restart, "Play again", rl.Color{R: 50, G: 150, B: 50, A: 255})
	drawButton(quit, "Quit", rl.Color{R: 150, G: 50, B: 50, A: 255})

	sessionText := fmt.Sprintf("session %s", s.ID)
	rl.DrawText(sessionText, borderPadding, r.screenHeight-24, 14, rl.Gray)
}

func drawButton(rect rl.Rectangle, label string, color rl.Color) {
	rl.DrawRectangleRounded(rect, 0.3, 8, color)
	fontSize := int32(28)
	rl.DrawText(label,
		int32(rect.X)+(int32(rect.Width)-rl.MeasureText(label, fontSize))/2,
		int32(rect.Y)+(int32(rect.Height)-fontSize)/2,
		fontSize, rl.White)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
