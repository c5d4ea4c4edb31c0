package internal

import "math"

// HullQuickHull is the divide-and-conquer strategy: split the points by the
// chord between the two x-extremes, then on each side recursively take the
// point farthest from the chord and subdivide by the two edges it creates. A
// branch terminates when no points remain outside its chord. Points exactly
// on a splitting line belong to neither side and are dropped: they are
// interior or collinear boundary points, and the fixed policy excludes both.
//
// The recursion emits vertices in boundary order between its chord endpoints,
// so the hull comes out counterclockwise without a final angular sort.
// Average O(n log n); the worst case is O(n²), reached when every point ends
// up on the hull (e.g. points on a circle), because each split then peels off
// a single vertex.
func HullQuickHull(points []*Point) Hull {
	pts := dedupePoints(points)
	if len(pts) < 3 {
		return Hull(pts)
	}

	// Extreme x points; ties fall to the lower point so the choice is
	// deterministic.
	left, right := pts[0], pts[0]
	for _, p := range pts {
		if p.X < left.X || (p.X == left.X && p.Y < left.Y) {
			left = p
		}
		if p.X > right.X || (p.X == right.X && p.Y > right.Y) {
			right = p
		}
	}

	var vertices []*Point
	vertices = append(vertices, left)
	vertices = appendBeyond(vertices, rightOf(pts, left, right), left, right)
	vertices = append(vertices, right)
	vertices = appendBeyond(vertices, rightOf(pts, right, left), right, left)

	return canonicalize(vertices)
}

// Points strictly to the right of the directed chord p→q. Walking the hull
// counterclockwise from p to q, the boundary bulges through exactly these
// points.
func rightOf(pts []*Point, p, q *Point) []*Point {
	var side []*Point
	for _, r := range pts {
		if Cross(p, q, r) < 0 {
			side = append(side, r)
		}
	}
	return side
}

// Emit the hull vertices strictly between p and q in boundary order, given
// the points right of p→q.
func appendBeyond(vertices []*Point, side []*Point, p, q *Point) []*Point {
	if len(side) == 0 {
		return vertices
	}

	// Farthest point from the chord. The chord is shared by every candidate,
	// so the |cross| comparison stands in for the perpendicular distance.
	far := side[0]
	farDist := math.Abs(Cross(p, q, far))
	for _, r := range side[1:] {
		if d := math.Abs(Cross(p, q, r)); d > farDist {
			far, farDist = r, d
		}
	}

	vertices = appendBeyond(vertices, rightOf(side, p, far), p, far)
	vertices = append(vertices, far)
	return appendBeyond(vertices, rightOf(side, far, q), far, q)
}
