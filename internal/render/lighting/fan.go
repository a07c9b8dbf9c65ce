package lighting

import (
	"image/color"

	"chosenoffset.com/hunt67/internal/core/vision"
	"chosenoffset.com/hunt67/internal/render"
)

// Fan converts a visibility polygon into a triangle-fan mesh centered on
// origin. The center vertex carries the tint at full strength; every rim
// vertex fades with its distance from origin, never below minAlpha so the
// light ends in a soft fade instead of a hard cutoff. The first polygon
// vertex is appended again at the end to close the fan across the angular
// wraparound, so the mesh always has len(polygon)+2 vertices. The tint's
// alpha channel scales the whole fan (255 = full strength).
//
// The polygon must be ordered by angle around origin, as produced by
// vision.Polygon.
func Fan(origin vision.Point, polygon []vision.Point, maxRange float64, tint color.NRGBA, minAlpha float64) ([]render.Vertex, []uint16) {
	if len(polygon) == 0 {
		return nil, nil
	}

	r := float32(tint.R) / 255
	g := float32(tint.G) / 255
	b := float32(tint.B) / 255
	strength := float32(tint.A) / 255

	vertices := make([]render.Vertex, 0, len(polygon)+2)
	vertices = append(vertices, render.Vertex{
		DstX:   float32(origin.X),
		DstY:   float32(origin.Y),
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: strength,
	})

	rim := func(p vision.Point) render.Vertex {
		falloff := 1 - origin.Distance(p)/maxRange
		if falloff < minAlpha {
			falloff = minAlpha
		}
		if falloff > 1 {
			falloff = 1
		}
		return render.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: float32(falloff) * strength,
		}
	}

	for _, p := range polygon {
		vertices = append(vertices, rim(p))
	}
	vertices = append(vertices, rim(polygon[0]))

	// One triangle per rim edge: center, vertex i, vertex i+1.
	indices := make([]uint16, 0, len(polygon)*3)
	for i := 1; i <= len(polygon); i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	return vertices, indices
}
