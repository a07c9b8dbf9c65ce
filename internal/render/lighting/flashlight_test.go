package lighting

import (
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/hunt67/internal/core/vision"
	"chosenoffset.com/hunt67/internal/render"
)

// The mocks below record every draw call so tests can assert on the
// composition order and on the degenerate-polygon skip without a GPU.

type mockOp struct {
	img   *mockImage
	kind  string // "fill", "clear", "triangles", "image"
	clr   color.Color
	src   render.Image
	blend render.Blend
	verts int
}

type mockRecorder struct {
	ops []mockOp
}

func (r *mockRecorder) trianglesCount() int {
	n := 0
	for _, op := range r.ops {
		if op.kind == "triangles" {
			n++
		}
	}
	return n
}

type mockImage struct {
	rec      *mockRecorder
	w, h     int
	disposed bool
}

func (m *mockImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }
func (m *mockImage) Size() (int, int)        { return m.w, m.h }

func (m *mockImage) Fill(clr color.Color) {
	m.rec.ops = append(m.rec.ops, mockOp{img: m, kind: "fill", clr: clr})
}

func (m *mockImage) Clear() {
	m.rec.ops = append(m.rec.ops, mockOp{img: m, kind: "clear"})
}

func (m *mockImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := mockOp{img: m, kind: "image", src: src}
	if opts != nil {
		op.blend = opts.Blend
	}
	m.rec.ops = append(m.rec.ops, op)
}

func (m *mockImage) DrawTriangles(vertices []render.Vertex, indices []uint16, src render.Image, opts *render.DrawTrianglesOptions) {
	op := mockOp{img: m, kind: "triangles", src: src, verts: len(vertices)}
	if opts != nil {
		op.blend = opts.Blend
	}
	m.rec.ops = append(m.rec.ops, op)
}

func (m *mockImage) Dispose() { m.disposed = true }

type mockRenderer struct {
	rec    *mockRecorder
	images []*mockImage
}

func newMockRenderer() *mockRenderer {
	return &mockRenderer{rec: &mockRecorder{}}
}

func (r *mockRenderer) NewImage(w, h int) render.Image {
	img := &mockImage{rec: r.rec, w: w, h: h}
	r.images = append(r.images, img)
	return img
}

func (r *mockRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color)        {}
func (r *mockRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color)    {}
func (r *mockRenderer) StrokeCircle(dst render.Image, x, y, r2, sw float32, clr color.Color)  {}
func (r *mockRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, sw float32, clr color.Color) {
}
func (r *mockRenderer) DrawText(dst render.Image, text string, x, y int) {}
func (r *mockRenderer) MeasureText(text string) (int, int)               { return len(text) * 6, 13 }

func (r *mockRenderer) screen(w, h int) *mockImage {
	return &mockImage{rec: r.rec, w: w, h: h}
}

func trianglePolygon() []vision.Point {
	return []vision.Point{vision.Pt(150, 100), vision.Pt(100, 150), vision.Pt(50, 100)}
}

func TestFlashlightSkipsDegeneratePolygons(t *testing.T) {
	tests := []struct {
		name    string
		polygon []vision.Point
	}{
		{"no points", nil},
		{"one point", []vision.Point{vision.Pt(10, 10)}},
		{"two points", []vision.Point{vision.Pt(10, 10), vision.Pt(20, 20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRenderer()
			f := New(r, DefaultConfig())
			screen := r.screen(900, 650)

			f.Draw(screen, vision.Pt(100, 100), tt.polygon)

			if n := r.rec.trianglesCount(); n != 0 {
				t.Errorf("Expected no fan draws for a degenerate polygon, got %d", n)
			}

			// The darkness still covers the scene.
			covered := false
			for _, op := range r.rec.ops {
				if op.kind == "image" && op.img == screen {
					covered = true
				}
			}
			if !covered {
				t.Error("Expected the darkness layer to be composited even with no visible area")
			}
		})
	}
}

func TestFlashlightCompositionOrder(t *testing.T) {
	r := newMockRenderer()
	cfg := DefaultConfig()
	f := New(r, cfg)
	screen := r.screen(900, 650)

	f.Draw(screen, vision.Pt(100, 100), trianglePolygon())

	if len(r.images) != 2 {
		t.Fatalf("Expected 2 renderer images (white source and darkness), got %d", len(r.images))
	}
	white := r.images[0]
	darkness := r.images[1]
	if darkness.w != 900 || darkness.h != 650 {
		t.Errorf("Expected darkness layer sized 900x650, got %dx%d", darkness.w, darkness.h)
	}

	// The white source is filled once at construction; the draw emits
	// fill, erase, composite, glow in that order.
	ops := r.rec.ops
	if len(ops) != 5 {
		t.Fatalf("Expected 5 recorded ops, got %d", len(ops))
	}

	if ops[0].img != white || ops[0].kind != "fill" {
		t.Errorf("Expected op 0 to fill the white source, got %s on %p", ops[0].kind, ops[0].img)
	}

	if ops[1].img != darkness || ops[1].kind != "fill" {
		t.Fatalf("Expected op 1 to fill the darkness layer, got %s", ops[1].kind)
	}
	if ops[1].clr != (color.NRGBA{A: cfg.DarkAlpha}) {
		t.Errorf("Expected darkness fill color {0 0 0 %d}, got %v", cfg.DarkAlpha, ops[1].clr)
	}

	if ops[2].img != darkness || ops[2].kind != "triangles" || ops[2].blend != render.BlendDestinationOut {
		t.Errorf("Expected op 2 to erase the fan from the darkness, got %s blend %v", ops[2].kind, ops[2].blend)
	}
	if ops[2].verts != len(trianglePolygon())+2 {
		t.Errorf("Expected eraser fan with %d vertices, got %d", len(trianglePolygon())+2, ops[2].verts)
	}

	if ops[3].img != screen || ops[3].kind != "image" || ops[3].blend != render.BlendSourceOver {
		t.Errorf("Expected op 3 to composite the darkness onto the screen, got %s blend %v", ops[3].kind, ops[3].blend)
	}
	if ops[3].src != render.Image(darkness) {
		t.Error("Expected the composited image to be the darkness layer")
	}

	if ops[4].img != screen || ops[4].kind != "triangles" || ops[4].blend != render.BlendLighter {
		t.Errorf("Expected op 4 to add the glow fan onto the screen, got %s blend %v", ops[4].kind, ops[4].blend)
	}
}

func TestFlashlightReusesDarknessLayer(t *testing.T) {
	r := newMockRenderer()
	f := New(r, DefaultConfig())
	screen := r.screen(900, 650)

	f.Draw(screen, vision.Pt(100, 100), trianglePolygon())
	f.Draw(screen, vision.Pt(120, 110), trianglePolygon())

	if len(r.images) != 2 {
		t.Errorf("Expected the darkness layer to be reused across frames, got %d images", len(r.images))
	}

	// A resize replaces the layer and disposes the old one.
	bigger := r.screen(1280, 720)
	f.Draw(bigger, vision.Pt(100, 100), trianglePolygon())

	if len(r.images) != 3 {
		t.Fatalf("Expected a new darkness layer after resize, got %d images", len(r.images))
	}
	if !r.images[1].disposed {
		t.Error("Expected the old darkness layer to be disposed after resize")
	}
}

func TestFlashlightDispose(t *testing.T) {
	r := newMockRenderer()
	f := New(r, DefaultConfig())
	screen := r.screen(900, 650)
	f.Draw(screen, vision.Pt(100, 100), trianglePolygon())

	f.Dispose()

	for i, img := range r.images {
		if !img.disposed {
			t.Errorf("Expected image %d to be disposed", i)
		}
	}
}
