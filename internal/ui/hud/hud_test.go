package hud

import (
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/hunt67/internal/render"
)

type textCall struct {
	text string
	x, y int
}

// stubRenderer records DrawText calls and measures with the debug font's
// fixed 6x13 character cell.
type stubRenderer struct {
	texts []textCall
}

func (r *stubRenderer) NewImage(w, h int) render.Image                                       { return &stubImage{w: w, h: h} }
func (r *stubRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color)       {}
func (r *stubRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color)   {}
func (r *stubRenderer) StrokeCircle(dst render.Image, x, y, rr, sw float32, clr color.Color) {}
func (r *stubRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, sw float32, clr color.Color) {
}

func (r *stubRenderer) DrawText(dst render.Image, text string, x, y int) {
	r.texts = append(r.texts, textCall{text: text, x: x, y: y})
}

func (r *stubRenderer) MeasureText(text string) (int, int) { return len(text) * 6, 13 }

type stubImage struct {
	w, h int
}

func (i *stubImage) Bounds() image.Rectangle                                { return image.Rect(0, 0, i.w, i.h) }
func (i *stubImage) Size() (int, int)                                       { return i.w, i.h }
func (i *stubImage) Fill(clr color.Color)                                   {}
func (i *stubImage) Clear()                                                 {}
func (i *stubImage) DrawImage(src render.Image, o *render.DrawImageOptions) {}
func (i *stubImage) DrawTriangles(v []render.Vertex, idx []uint16, src render.Image, o *render.DrawTrianglesOptions) {
}
func (i *stubImage) Dispose() {}

func TestHUDDrawsTimerAndLevel(t *testing.T) {
	r := &stubRenderer{}
	h := New(nil, r)
	screen := &stubImage{w: 900, h: 650}

	h.Draw(screen, Status{LevelName: "The Yard", TimeLeft: 12.34})

	if len(r.texts) != 2 {
		t.Fatalf("Expected 2 text draws, got %d", len(r.texts))
	}
	if r.texts[0].text != "TIME 12.3" {
		t.Errorf("Expected timer text 'TIME 12.3', got '%s'", r.texts[0].text)
	}
	if r.texts[0].x != 28 || r.texts[0].y != 28 {
		t.Errorf("Expected timer at the margin (28, 28), got (%d, %d)", r.texts[0].x, r.texts[0].y)
	}
	if r.texts[1].text != "LEVEL The Yard" {
		t.Errorf("Expected level line, got '%s'", r.texts[1].text)
	}
	if r.texts[1].y != 28+lineHeight {
		t.Errorf("Expected level line below the timer, got y=%d", r.texts[1].y)
	}
}

func TestHUDMessagesStack(t *testing.T) {
	r := &stubRenderer{}
	h := New(nil, r)
	screen := &stubImage{w: 900, h: 650}

	h.Draw(screen, Status{
		LevelName: "The Yard",
		Messages:  []string{"7 spotted!", "Level: The Yard"},
	})

	if len(r.texts) != 4 {
		t.Fatalf("Expected 4 text draws, got %d", len(r.texts))
	}
	if r.texts[2].text != "> 7 spotted!" {
		t.Errorf("Expected message with prefix, got '%s'", r.texts[2].text)
	}
	if r.texts[3].y != r.texts[2].y+lineHeight {
		t.Errorf("Expected messages to stack, got y=%d after y=%d", r.texts[3].y, r.texts[2].y)
	}
}

func TestHUDBannerCentered(t *testing.T) {
	r := &stubRenderer{}
	h := New(&Config{}, r) // all sections off, banner still shows
	screen := &stubImage{w: 900, h: 650}

	h.Draw(screen, Status{Banner: "TIME'S UP", Hint: "R: retry"})

	if len(r.texts) != 2 {
		t.Fatalf("Expected banner and hint only, got %d draws", len(r.texts))
	}

	banner := r.texts[0]
	wantX := (900 - len("TIME'S UP")*6) / 2
	wantY := (650 - 13) / 2
	if banner.x != wantX || banner.y != wantY {
		t.Errorf("Expected banner centered at (%d, %d), got (%d, %d)", wantX, wantY, banner.x, banner.y)
	}

	hint := r.texts[1]
	if hint.y != wantY+lineHeight {
		t.Errorf("Expected hint under the banner, got y=%d", hint.y)
	}
}

func TestHUDDisabledSectionsDrawNothing(t *testing.T) {
	r := &stubRenderer{}
	h := New(&Config{}, r)
	screen := &stubImage{w: 900, h: 650}

	h.Draw(screen, Status{LevelName: "The Yard", TimeLeft: 5, Messages: []string{"hello"}})

	if len(r.texts) != 0 {
		t.Errorf("Expected no draws with all sections disabled, got %d", len(r.texts))
	}
}
