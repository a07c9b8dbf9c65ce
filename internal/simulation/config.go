// Package simulation provides the tunable rules of a hunt: player movement,
// flashlight behavior and round setup. Values load from an optional JSON
// file on top of built-in defaults.
package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"chosenoffset.com/hunt67/internal/render/lighting"
)

// Config holds all tunable game rules.
type Config struct {
	// Player movement and collision
	Player PlayerConfig `json:"player"`

	// Flashlight tuning
	Light LightConfig `json:"light"`

	// Round setup
	Rules RulesConfig `json:"rules"`
}

// PlayerConfig defines the player's physical parameters.
type PlayerConfig struct {
	Radius float64 `json:"radius"` // Collision circle radius in pixels
	Speed  float64 `json:"speed"`  // Movement speed in pixels per second
}

// LightConfig defines the flashlight's tuning values.
type LightConfig struct {
	Range        float64 `json:"range"`         // How far the light reaches, in pixels
	DarkAlpha    uint8   `json:"dark_alpha"`    // Darkness overlay opacity (0-255)
	GlowColor    string  `json:"glow_color"`    // Glow color as hex "RRGGBB"
	GlowStrength uint8   `json:"glow_strength"` // Additive glow intensity (0-255)
	MinAlpha     uint8   `json:"min_alpha"`     // Falloff floor at the light's rim (0-255)
}

// RulesConfig defines round setup.
type RulesConfig struct {
	StartLevel int `json:"start_level"` // Index into the built-in level table
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			Radius: 22,
			Speed:  320,
		},
		Light: LightConfig{
			Range:        260,
			DarkAlpha:    235,
			GlowColor:    "ffc864",
			GlowStrength: 90,
			MinAlpha:     25,
		},
		Rules: RulesConfig{
			StartLevel: 0,
		},
	}
}

// LoadConfig loads game config from a JSON file. A missing file is not an
// error: the defaults apply, and any fields the file does define override
// them.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	return config, nil
}

// Lighting converts the light section into the immutable tuning struct the
// flashlight is constructed with.
func (c *Config) Lighting() lighting.Config {
	glow := parseHexColor(c.Light.GlowColor, lighting.DefaultConfig().Glow)
	glow.A = c.Light.GlowStrength

	return lighting.Config{
		Range:     c.Light.Range,
		DarkAlpha: c.Light.DarkAlpha,
		Glow:      glow,
		MinAlpha:  float64(c.Light.MinAlpha) / 255.0,
	}
}

// parseHexColor parses an "RRGGBB" hex color, keeping the fallback's
// channels when the string doesn't parse.
func parseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	if len(s) != 6 {
		return fallback
	}
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); n != 3 || err != nil {
		return fallback
	}
	return color.NRGBA{R: r, G: g, B: b, A: fallback.A}
}
