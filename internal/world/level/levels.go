package level

import "chosenoffset.com/hunt67/internal/core/vision"

// levelDef is one row of the built-in level table. Border walls are added
// at load time, so walls lists only the interior obstacles.
type levelDef struct {
	name      string
	width     int
	height    int
	walls     []vision.Rect
	spawn     vision.Point
	target    Target
	timeLimit float64
}

var levels = []levelDef{
	{
		name:   "The Yard",
		width:  900,
		height: 650,
		walls: []vision.Rect{
			{X: 200, Y: 120, W: 450, H: 25},
			{X: 150, Y: 260, W: 25, H: 250},
			{X: 350, Y: 420, W: 380, H: 25},
			{X: 650, Y: 180, W: 25, H: 190},
		},
		spawn:     vision.Pt(100, 100),
		target:    Target{Pos: vision.Pt(780, 520), Radius: 18},
		timeLimit: 30,
	},
	{
		name:   "The Spiral",
		width:  900,
		height: 650,
		walls: []vision.Rect{
			{X: 100, Y: 150, W: 500, H: 25},
			{X: 575, Y: 150, W: 25, H: 250},
			{X: 250, Y: 300, W: 25, H: 250},
			{X: 400, Y: 450, W: 380, H: 25},
		},
		spawn:     vision.Pt(60, 580),
		target:    Target{Pos: vision.Pt(820, 80), Radius: 18},
		timeLimit: 30,
	},
}
