package vision

import "math"

// parallelEps is the cutoff below which a ray and a segment are treated as
// parallel. Near-parallel pairs are skipped rather than divided through.
const parallelEps = 1e-8

// raySegment intersects the ray origin + t*dir (t >= 0, dir unit length)
// with seg. It returns the intersection point, the ray distance t, and
// whether a hit exists. A hit exactly at a segment endpoint (u of 0 or 1)
// counts: the sweep deliberately aims rays at corners.
func raySegment(origin, dir Point, seg Segment) (Point, float64, bool) {
	// origin + t*dir = seg.A + u*delta, solved for t and u.
	delta := seg.Delta()

	den := dir.Cross(delta)
	if math.Abs(den) < parallelEps {
		return Point{}, 0, false
	}

	diff := seg.A.Sub(origin)
	t := diff.Cross(delta) / den
	u := diff.Cross(dir) / den

	if t < 0 || u < 0 || u > 1 {
		return Point{}, 0, false
	}
	return origin.Add(dir.Mul(t)), t, true
}

// PointInPolygon tests whether a point lies inside a polygon using the
// ray-casting parity rule.
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned
// rectangle. It clamps the circle's center to the rectangle to find the
// closest point, then compares that distance to the radius.
func CircleIntersectsRect(center Point, radius float64, r Rect) bool {
	closest := Point{
		X: clamp(center.X, r.X, r.X+r.W),
		Y: clamp(center.Y, r.Y, r.Y+r.H),
	}
	d := center.Sub(closest)
	return d.Dot(d) < radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
