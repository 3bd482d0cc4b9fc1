package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/stats"
)

const (
	borderPadding = 10 // padding around the game area
	headerHeight  = 40
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame: header, board grid, session panel and, once
// the game is over, the restart overlay.
func (r *Renderer) Draw(g *game.Game, session *stats.Session) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := r.screenHeight / 40

	// Fit the grid under the header, leaving the border padding on
	// both axes.
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - headerHeight - (borderPadding * 2)

	cellW := availableWidth / int32(g.Width)
	cellH := availableHeight / int32(g.Height)
	r.cellSize = min32(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Width)
	r.totalGridHeight = r.cellSize * int32(g.Height)

	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = headerHeight + borderPadding

	r.drawHeader(g, session, fontSize)

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	head := g.Snake.Head()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := y*g.Width + x
			color := rl.Black
			switch g.Cells[idx] {
			case game.CellWall:
				color = rl.Blue
			case game.CellFood:
				color = rl.Red
			case game.CellSnake:
				color = rl.Yellow
				if idx == head {
					color = rl.Gold
				}
			}
			rl.DrawRectangle(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize-1,
				r.cellSize-1,
				color,
			)
		}
	}

	if g.GameOver {
		r.drawGameOver(g, fontSize)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawHeader(g *game.Game, session *stats.Session, fontSize int32) {
	header := fmt.Sprintf("SCORE: %d   STEPS: %d   TIME: %.0fs", g.Score, g.Steps, g.ElapsedTime())
	rl.DrawText(header, borderPadding, (headerHeight-fontSize)/2, fontSize, rl.RayWhite)

	if session.Count() > 0 {
		right := fmt.Sprintf("GAMES: %d   BEST: %d   AVG: %.1f",
			session.Count(), session.HighScore(), session.AverageScore())
		width := rl.MeasureText(right, fontSize)
		rl.DrawText(right, r.screenWidth-width-borderPadding, (headerHeight-fontSize)/2, fontSize, rl.Gray)
	}
}

func (r *Renderer) drawGameOver(g *game.Game, fontSize int32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight,
		rl.Color{R: 0, G: 0, B: 0, A: 180})

	title := fmt.Sprintf("GAME OVER - SCORE %d", g.Score)
	hint := "press R to restart, Q to quit"

	titleSize := fontSize * 2
	titleWidth := rl.MeasureText(title, titleSize)
	hintWidth := rl.MeasureText(hint, fontSize)
	centerX := r.offsetX + r.totalGridWidth/2
	centerY := r.offsetY + r.totalGridHeight/2

	rl.DrawText(title, centerX-titleWidth/2, centerY-titleSize, titleSize, rl.Red)
	rl.DrawText(hint, centerX-hintWidth/2, centerY+fontSize, fontSize, rl.RayWhite)
}
