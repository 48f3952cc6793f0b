package game

import (
	"fmt"

	"github.com/vovakirdan/knifefall/internal/core"
	"github.com/vovakirdan/knifefall/internal/entity"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// playfieldViewport maps the logical playfield onto the screen below the HUD.
func playfieldViewport(screenW, screenH int, b entity.Bounds) core.Viewport {
	return core.NewViewport(0, hudRows, screenW, screenH-hudRows, b.Width, b.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.viewport = playfieldViewport(dst.Width(), dst.Height(), g.bounds)
	v := g.viewport

	g.snow.Render(dst, v)
	g.player.Render(dst, v)
	for _, k := range g.knives {
		k.Render(dst, v)
	}
	for _, h := range g.fruits {
		h.Render(dst, v)
	}
	for _, h := range g.bombs {
		h.Render(dst, v)
	}
	for _, e := range g.explosions {
		e.Render(dst, v)
	}

	dst.DrawTextColored(0, 0, g.HUD(), core.ColorBrightWhite)

	switch g.phase {
	case PhaseReady:
		g.drawCenteredMessage(dst, "KNIFEFALL", "S start  |  Space throw  |  +/- speed")
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press R to reset")
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to reset", g.score))
	}
}

// HUD returns the status line drawn above the playfield.
func (g *Game) HUD() string {
	return fmt.Sprintf("Score: %d  Lives: %d  State: %s  Speed factor: %.1fx",
		g.score, g.lives, g.phase, g.Multiplier())
}

// drawCenteredMessage draws a message box in the center of the playfield.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := hudRows + (h-hudRows-boxH)/2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
