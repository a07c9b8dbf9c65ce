// Package lighting turns visibility polygons into the flashlight effect on
// screen: a darkness overlay with the visible area erased out of it and a
// warm additive glow over the revealed scene.
package lighting

import (
	"image/color"

	"chosenoffset.com/hunt67/internal/core/vision"
	"chosenoffset.com/hunt67/internal/render"
)

// Config holds the flashlight tuning values. A Flashlight reads them
// unchanged for its whole lifetime.
type Config struct {
	// Range is how far the light reaches, in pixels.
	Range float64

	// DarkAlpha is the opacity of the darkness overlay outside the light.
	DarkAlpha uint8

	// Glow is the additive light color; its alpha channel is the glow
	// strength (0 disables the glow pass visually, 255 is full strength).
	Glow color.NRGBA

	// MinAlpha is the falloff floor for fan rim vertices, in [0, 1].
	MinAlpha float64
}

// DefaultConfig returns the flashlight tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Range:     260,
		DarkAlpha: 235,
		Glow:      color.NRGBA{R: 255, G: 200, B: 100, A: 90},
		MinAlpha:  25.0 / 255.0,
	}
}

// eraserTint is the fan tint used to cut the visible area out of the
// darkness overlay. Only its alpha profile matters to the erase blend.
var eraserTint = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Flashlight owns the offscreen darkness texture and composites the
// two-pass light effect onto the screen each frame.
type Flashlight struct {
	cfg      Config
	renderer render.Renderer

	darkness render.Image
	white    render.Image // 1x1 source for untextured triangles
}

// New creates a Flashlight using the given renderer and tuning.
func New(r render.Renderer, cfg Config) *Flashlight {
	white := r.NewImage(1, 1)
	white.Fill(color.White)

	return &Flashlight{
		cfg:      cfg,
		renderer: r,
		white:    white,
	}
}

// Config returns the flashlight's tuning values.
func (f *Flashlight) Config() Config {
	return f.cfg
}

// Draw composites the flashlight effect onto screen. The polygon is the
// visibility polygon around origin for this frame; with fewer than 3 points
// there is no visible area, so both fan passes are skipped and the darkness
// covers the whole scene. Draw runs after the scene is rendered and before
// the UI, so the UI stays unaffected by darkness and glow.
func (f *Flashlight) Draw(screen render.Image, origin vision.Point, polygon []vision.Point) {
	w, h := screen.Size()

	// Ensure the darkness texture exists and matches the screen size
	if f.darkness == nil || needsResize(f.darkness, w, h) {
		if f.darkness != nil {
			f.darkness.Dispose()
		}
		f.darkness = f.renderer.NewImage(w, h)
	}

	// Step 1: Uniform darkness over the whole layer
	f.darkness.Fill(color.NRGBA{A: f.cfg.DarkAlpha})

	lit := len(polygon) >= 3

	// Step 2: Erase the visible area out of the darkness. The erase blend
	// keeps dst * (1 - src.alpha), so the fan's falloff becomes a soft
	// hole in the overlay.
	if lit {
		vertices, indices := Fan(origin, polygon, f.cfg.Range, eraserTint, f.cfg.MinAlpha)
		f.darkness.DrawTriangles(vertices, indices, f.white, &render.DrawTrianglesOptions{
			Blend:     render.BlendDestinationOut,
			AntiAlias: false,
		})
	}

	// Step 3: Lay the darkness over the scene
	screen.DrawImage(f.darkness, &render.DrawImageOptions{
		Blend: render.BlendSourceOver,
	})

	// Step 4: Additive glow over the revealed area
	if lit {
		vertices, indices := Fan(origin, polygon, f.cfg.Range, f.cfg.Glow, f.cfg.MinAlpha)
		screen.DrawTriangles(vertices, indices, f.white, &render.DrawTrianglesOptions{
			Blend:     render.BlendLighter,
			AntiAlias: false,
		})
	}
}

// Dispose releases the textures the flashlight owns.
func (f *Flashlight) Dispose() {
	if f.darkness != nil {
		f.darkness.Dispose()
		f.darkness = nil
	}
	if f.white != nil {
		f.white.Dispose()
		f.white = nil
	}
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}
