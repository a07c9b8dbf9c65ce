// Package level holds the built-in arenas: wall layouts, spawn points,
// targets and time limits. A loaded Level owns its occluder segments, so
// visibility queries can never run against a previous level's geometry.
package level

import "chosenoffset.com/hunt67/internal/core/vision"

// Target is the goal the player has to reach.
type Target struct {
	Pos    vision.Point
	Radius float64
}

// Level is one playable arena. Walls and Segments are fixed for the
// level's lifetime; loading another level produces a fresh value.
type Level struct {
	Name   string
	Width  int
	Height int

	// Walls are all solid rectangles, border walls included.
	Walls []vision.Rect

	// Segments is the occluder index built from Walls at load time.
	Segments []vision.Segment

	Spawn     vision.Point
	Target    Target
	TimeLimit float64
}

// Count returns how many levels are built in.
func Count() int {
	return len(levels)
}

// Load builds the level at the given index. The index wraps around the
// table in both directions, so advancing past the last level starts over.
func Load(index int) Level {
	def := levels[((index%len(levels))+len(levels))%len(levels)]

	walls := make([]vision.Rect, 0, len(def.walls)+4)
	walls = append(walls, borders(def.width, def.height)...)
	walls = append(walls, def.walls...)

	return Level{
		Name:      def.name,
		Width:     def.width,
		Height:    def.height,
		Walls:     walls,
		Segments:  vision.SegmentsFromRects(walls),
		Spawn:     def.spawn,
		Target:    def.target,
		TimeLimit: def.timeLimit,
	}
}

// CircleHitsWall reports whether a circle at center overlaps any wall.
// Movement code moves first and reverts on a hit.
func (l Level) CircleHitsWall(center vision.Point, radius float64) bool {
	for _, wall := range l.Walls {
		if vision.CircleIntersectsRect(center, radius, wall) {
			return true
		}
	}
	return false
}

// borderThickness is the width of the arena's outer walls.
const borderThickness = 20

// borders returns the four outer walls enclosing a width x height arena.
func borders(width, height int) []vision.Rect {
	w := float64(width)
	h := float64(height)
	t := float64(borderThickness)
	return []vision.Rect{
		{X: 0, Y: 0, W: w, H: t},
		{X: 0, Y: h - t, W: w, H: t},
		{X: 0, Y: 0, W: t, H: h},
		{X: w - t, Y: 0, W: t, H: h},
	}
}
