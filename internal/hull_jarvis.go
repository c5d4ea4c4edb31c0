package internal

// HullJarvisMarch wraps the point set like a gift: starting from the
// canonical point, it repeatedly selects the candidate such that every other
// point lies counterclockwise of the current-to-candidate edge, until the
// wrap returns to the start. When several candidates are collinear with the
// current edge, the farthest one wins, which skips collinear boundary points
// in a single step. O(nh), h the hull size, so it beats the sort-based
// algorithms when the hull is small.
func HullJarvisMarch(points []*Point) Hull {
	pts := dedupePoints(points)
	if len(pts) < 3 {
		return Hull(pts)
	}

	start := pts[canonicalPoint(pts)]
	var vertices []*Point

	pivot := start
	for {
		vertices = append(vertices, pivot)

		var candidate *Point
		for _, r := range pts {
			if r == pivot {
				continue
			}
			if candidate == nil {
				candidate = r
				continue
			}
			switch OrientationOf(pivot, candidate, r) {
			case Clockwise:
				// r is outside the current edge; it becomes the edge.
				candidate = r
			case Collinear:
				if pivot.DistSq(r) > pivot.DistSq(candidate) {
					candidate = r
				}
			}
		}

		if candidate == start {
			break
		}
		pivot = candidate

		if len(vertices) > len(pts) {
			fatalf("jarvis march: wrap did not return to the start point")
		}
	}

	// The wrap starts at the canonical point and turns counterclockwise, so
	// the loop is already canonical; canonicalize keeps that a contract
	// rather than a coincidence.
	return canonicalize(vertices)
}
