package vision

// SegmentsFromRects flattens a set of rectangular walls into occluder
// segments, four edges per rectangle in a fixed winding: top, right,
// bottom, left. Edges shared by touching rectangles are emitted once per
// rectangle; coincident duplicates only produce redundant ray hits, so the
// sweep tolerates them and callers must not assume they were removed.
func SegmentsFromRects(rects []Rect) []Segment {
	segments := make([]Segment, 0, len(rects)*4)

	for _, r := range rects {
		min := r.Min()
		max := r.Max()
		segments = append(segments,
			Segment{A: Point{min.X, min.Y}, B: Point{max.X, min.Y}},
			Segment{A: Point{max.X, min.Y}, B: Point{max.X, max.Y}},
			Segment{A: Point{max.X, max.Y}, B: Point{min.X, max.Y}},
			Segment{A: Point{min.X, max.Y}, B: Point{min.X, min.Y}},
		)
	}

	return segments
}
