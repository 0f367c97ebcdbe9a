package game

import (
	"fmt"

	"github.com/zxarcade/thruwall/internal/core"
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", g.arena.W+2, g.arena.H+3))
		return
	}

	switch g.phase {
	case PhaseTitle:
		g.drawFrame(dst)
		g.drawTitle(dst)
	case PhasePlaying:
		g.drawFrame(dst)
		g.drawPlayfield(dst)
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press Esc to resume")
		}
	case PhaseGameOver:
		g.drawFrame(dst)
		g.drawPlayfield(dst)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("FINAL SCORE %d  |  Y = play again, N = exit", g.FinalScore()))
	}
}

// cellX converts an arena column to a screen column.
func (g *Game) cellX(x int) int {
	return g.offsetX + 1 + x
}

// cellY converts an arena row to a screen row.
func (g *Game) cellY(y int) int {
	return g.offsetY + 2 + y
}

// drawFrame draws the HUD line, the arena border, and the wall band.
func (g *Game) drawFrame(dst *core.Screen) {
	// HUD
	hudY := g.offsetY
	dst.DrawText(g.offsetX, hudY, fmt.Sprintf("SCORE %d", g.score))
	roundText := fmt.Sprintf("ROUND %d", core.Max(g.round, 1))
	dst.DrawText(g.offsetX+(g.arena.W+2-len(roundText))/2, hudY, roundText)
	livesText := fmt.Sprintf("LIVES %d", core.Max(g.lives, 0))
	dst.DrawText(g.offsetX+g.arena.W+2-len(livesText), hudY, livesText)

	// Border box around the arena
	dst.DrawBox(core.NewRect(g.offsetX, g.offsetY+1, g.arena.W+2, g.arena.H+2))

	// Decorative wall band across the top of the arena. The ball passes
	// through it; deflection happens at the border above.
	if g.cfg.Arena.WallRows > 0 {
		dst.DrawRectColored(
			core.NewRect(g.cellX(0), g.cellY(0), g.arena.W, g.cfg.Arena.WallRows),
			WallChar, core.ColorCyan)
	}
}

// drawPlayfield draws the paddle and the ball.
func (g *Game) drawPlayfield(dst *core.Screen) {
	for i := 0; i < g.paddle.Width; i++ {
		dst.SetColored(g.cellX(g.paddle.X+i), g.cellY(g.paddle.Y), PaddleChar, core.ColorBrightBlue)
	}

	// Blink the ball while waiting to serve
	if g.serveDelay == 0 || (g.serveDelay/5)%2 == 0 {
		dst.SetColored(g.cellX(g.ball.X), g.cellY(g.ball.Y), BallChar, core.ColorBrightRed)
	}
}

// drawTitle draws the title screen inside the arena.
func (g *Game) drawTitle(dst *core.Screen) {
	midY := g.cellY(g.arena.H / 2)

	dst.DrawTextCentered(midY-4, "THRU' THE WALL")
	dst.DrawTextCentered(midY-1, "O/P to move left and right")
	dst.DrawTextCentered(midY, "Hold Shift for extra zip")

	// Blinking prompt
	if (g.tickCount/10)%2 == 0 {
		dst.DrawTextCentered(midY+3, "PRESS ANY KEY TO START")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
