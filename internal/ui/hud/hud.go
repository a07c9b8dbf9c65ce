// Package hud draws the in-game overlay: the countdown readout, transient
// messages and the end-of-round banner. It renders with the debug font, so
// no font assets are involved.
package hud

import (
	"fmt"

	"chosenoffset.com/hunt67/internal/render"
)

// Config defines what the HUD displays.
type Config struct {
	ShowTimer    bool `json:"show_timer"`    // Show the countdown readout
	ShowLevel    bool `json:"show_level"`    // Show the level name
	ShowMessages bool `json:"show_messages"` // Show transient messages
	Margin       int  `json:"margin"`        // Distance from the screen edges in pixels
}

// DefaultConfig returns a sensible default HUD configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowTimer:    true,
		ShowLevel:    true,
		ShowMessages: true,
		Margin:       28,
	}
}

// Status is everything the HUD shows for one frame.
type Status struct {
	LevelName string
	TimeLeft  float64
	Messages  []string
	Banner    string // End-of-round headline; empty while playing
	Hint      string // Key hint under the banner
}

// HUD manages the heads-up display.
type HUD struct {
	config   *Config
	renderer render.Renderer
}

// New creates a HUD with the given configuration. A nil config uses the
// defaults.
func New(config *Config, renderer render.Renderer) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:   config,
		renderer: renderer,
	}
}

// lineHeight spaces stacked HUD lines a bit wider than the debug font.
const lineHeight = 16

// Draw renders the HUD onto the screen. It runs after the lighting
// composite so the overlay is never darkened.
func (h *HUD) Draw(screen render.Image, st Status) {
	x := h.config.Margin
	y := h.config.Margin

	if h.config.ShowTimer {
		h.renderer.DrawText(screen, fmt.Sprintf("TIME %.1f", st.TimeLeft), x, y)
		y += lineHeight
	}
	if h.config.ShowLevel {
		h.renderer.DrawText(screen, fmt.Sprintf("LEVEL %s", st.LevelName), x, y)
		y += lineHeight
	}

	if h.config.ShowMessages {
		for _, msg := range st.Messages {
			h.renderer.DrawText(screen, "> "+msg, x, y)
			y += lineHeight
		}
	}

	if st.Banner != "" {
		h.drawCentered(screen, st.Banner, 0)
		if st.Hint != "" {
			h.drawCentered(screen, st.Hint, lineHeight)
		}
	}
}

// drawCentered draws one line centered horizontally, offset vertically from
// the screen's middle.
func (h *HUD) drawCentered(screen render.Image, text string, offsetY int) {
	w, hgt := screen.Size()
	textW, textH := h.renderer.MeasureText(text)
	h.renderer.DrawText(screen, text, (w-textW)/2, (hgt-textH)/2+offsetY)
}
