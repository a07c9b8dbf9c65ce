package vision

import (
	"math"
	"sort"
)

// cornerEps is the angular offset for the extra rays cast just to either
// side of every segment endpoint. A ray aimed exactly at a corner grazes it
// and floating rounding decides whether it sees past; bracketing the corner
// with rays at angle-eps and angle+eps pins down both the lit sliver beyond
// the edge and the shadow boundary before it. The value is an empirical
// tuning constant; corners closer together than cornerEps radians apart can
// still blur into one another.
const cornerEps = 7e-4

// circleSamples is how many boundary rays stand in for the sweep when there
// are no occluders at all, so the polygon comes out as a full circle.
const circleSamples = 32

// Polygon computes the visible region around origin as a polygon, with walls
// given as occluder segments and sight limited to maxRange. Every returned
// vertex lies on a ray from origin, so the polygon is star-shaped around it
// and ordered by ascending ray angle over (-pi, pi]. With no segments the
// result approximates a circle of radius maxRange; the polygon is never
// empty.
func Polygon(origin Point, segments []Segment, maxRange float64) []Point {
	angles := sweepAngles(origin, segments)

	points := make([]Point, 0, len(angles))
	for _, angle := range angles {
		points = append(points, castRay(origin, angle, segments, maxRange))
	}

	return points
}

// sweepAngles builds the sorted list of ray angles for a sweep from origin:
// three per unique segment endpoint (the corner angle bracketed by its
// epsilon offsets), exact duplicates removed. Without any endpoints it falls
// back to evenly spaced boundary angles.
func sweepAngles(origin Point, segments []Segment) []float64 {
	endpoints := collectEndpoints(segments)

	seen := make(map[float64]bool, len(endpoints)*3)
	angles := make([]float64, 0, len(endpoints)*3)
	add := func(angle float64) {
		if !seen[angle] {
			seen[angle] = true
			angles = append(angles, angle)
		}
	}

	for _, p := range endpoints {
		angle := p.Sub(origin).Angle()
		add(angle - cornerEps)
		add(angle)
		add(angle + cornerEps)
	}

	if len(angles) == 0 {
		for i := 0; i < circleSamples; i++ {
			add(-math.Pi + 2*math.Pi*float64(i)/circleSamples)
		}
	}

	sort.Float64s(angles)
	return angles
}

// collectEndpoints extracts the unique endpoint set from segments.
func collectEndpoints(segments []Segment) []Point {
	seen := make(map[Point]bool, len(segments)*2)

	endpoints := make([]Point, 0, len(segments)*2)
	for _, seg := range segments {
		if !seen[seg.A] {
			seen[seg.A] = true
			endpoints = append(endpoints, seg.A)
		}
		if !seen[seg.B] {
			seen[seg.B] = true
			endpoints = append(endpoints, seg.B)
		}
	}

	return endpoints
}

// castRay fires a single ray from origin at the given angle and returns the
// closest segment hit within maxRange, or the range-limited point on the
// sight boundary when nothing is struck. Every cast resolves to a point, so
// a sweep yields exactly one vertex per angle.
func castRay(origin Point, angle float64, segments []Segment, maxRange float64) Point {
	dir := Point{X: math.Cos(angle), Y: math.Sin(angle)}

	closestDist := maxRange
	closest := origin.Add(dir.Mul(maxRange))

	for _, seg := range segments {
		if hit, dist, ok := raySegment(origin, dir, seg); ok && dist < closestDist {
			closestDist = dist
			closest = hit
		}
	}

	return closest
}
