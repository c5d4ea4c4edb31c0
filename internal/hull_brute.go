package internal

// HullBruteForce builds the hull by testing every ordered point pair as a
// candidate edge: (p, q) is a hull edge iff every other point lies strictly
// to its left, or on the line but within the segment itself. The within-the-
// segment condition is what excludes collinear boundary points: for three
// collinear boundary points a, m, b, the edge a→m is disqualified by b lying
// on the line beyond m, while a→b survives with m inside it. Inclusion of
// collinear boundary points would otherwise be implementation-defined, so
// this algorithm fixes the policy: they are excluded.
//
// Directed edges with the interior on the left chain into a counterclockwise
// traversal for free: each hull vertex has exactly one qualifying outgoing
// edge, so the hull is read off by following them. O(n³).
func HullBruteForce(points []*Point) Hull {
	pts := dedupePoints(points)
	if len(pts) < 3 {
		return Hull(pts)
	}

	next := make(map[*Point]*Point, len(pts))
	for _, p := range pts {
		for _, q := range pts {
			if p == q {
				continue
			}
			if isHullEdge(pts, p, q) {
				next[p] = q
			}
		}
	}

	// All points collinear: only the two extremes made it in, pointing at
	// each other. The walk below handles that as a 2-cycle, giving the
	// degenerate segment hull.
	start := pts[canonicalPoint(pts)]
	if _, ok := next[start]; !ok {
		// The canonical point is always a hull vertex, so this is unreachable
		// unless an edge test and the traversal disagree.
		fatalf("brute force: canonical point %v has no outgoing hull edge", *start)
	}

	var vertices []*Point
	for p := start; ; p = next[p] {
		vertices = append(vertices, p)
		if next[p] == start {
			break
		}
		if len(vertices) > len(pts) {
			fatalf("brute force: hull edge traversal did not close")
		}
	}
	return canonicalize(vertices)
}

func isHullEdge(pts []*Point, p, q *Point) bool {
	for _, r := range pts {
		if r == p || r == q {
			continue
		}
		switch OrientationOf(p, q, r) {
		case Clockwise:
			return false
		case Collinear:
			if !onSegment(p, r, q) {
				return false
			}
		}
	}
	return true
}
