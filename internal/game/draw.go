package game

import (
	"image/color"

	"chosenoffset.com/hunt67/internal/render"
	"chosenoffset.com/hunt67/internal/ui/hud"
)

// Scene palette.
var (
	backgroundColor = color.NRGBA{15, 15, 20, 255}
	wallColor       = color.NRGBA{80, 80, 80, 255}
	playerColor     = color.NRGBA{0, 255, 255, 255}
	targetColor     = color.NRGBA{255, 255, 0, 255}
	targetRimColor  = color.NRGBA{255, 255, 160, 255}
	outlineColor    = color.NRGBA{0, 255, 120, 200}
)

// Draw renders one frame: the scene, then the flashlight composite over
// it, then the HUD on top (unaffected by lighting).
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	for _, wall := range g.Level.Walls {
		g.Renderer.FillRect(screen, float32(wall.X), float32(wall.Y), float32(wall.W), float32(wall.H), wallColor)
	}

	target := g.Level.Target
	g.Renderer.FillCircle(screen, float32(target.Pos.X), float32(target.Pos.Y), float32(target.Radius), targetColor)
	g.Renderer.StrokeCircle(screen, float32(target.Pos.X), float32(target.Pos.Y), float32(target.Radius), 2, targetRimColor)

	g.Renderer.FillCircle(screen, float32(g.Player.Pos.X), float32(g.Player.Pos.Y), float32(g.Player.Radius), playerColor)

	g.Light.Draw(screen, g.Player.Pos, g.Visible)

	if g.ShowOutline {
		g.drawOutline(screen)
	}

	g.HUD.Draw(screen, g.hudStatus())
}

// drawOutline traces the visibility polygon's rim.
func (g *Game) drawOutline(screen render.Image) {
	n := len(g.Visible)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := g.Visible[i]
		b := g.Visible[(i+1)%n]
		g.Renderer.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, outlineColor)
	}
}

// hudStatus assembles what the overlay shows this frame.
func (g *Game) hudStatus() hud.Status {
	st := hud.Status{
		LevelName: g.Level.Name,
		TimeLeft:  g.TimeLeft,
	}
	for _, msg := range g.Messages {
		st.Messages = append(st.Messages, msg.Text)
	}

	switch g.State {
	case StateWon:
		st.Banner = "YOU MADE 67!"
		st.Hint = "R: next level"
	case StateLost:
		st.Banner = "TIME'S UP"
		st.Hint = "R: retry"
	}

	return st
}
