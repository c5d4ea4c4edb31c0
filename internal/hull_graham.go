package internal

import "sort"

// HullGrahamScan sorts the points by polar angle around the canonical point,
// then walks them with a stack, popping while the last three points fail to
// make a strict counterclockwise turn. The angular comparison is done with
// the cross product rather than atan2: the anchor is the Below-minimum, so
// every other point sits in the half plane above it and two points compare by
// a single orientation test, with no trigonometry to disagree with the rest
// of the package.
//
// Points at equal angle are collapsed to the farthest one before scanning;
// together with the strict-turn rule this excludes all collinear boundary
// points from the output. O(n log n).
func HullGrahamScan(points []*Point) Hull {
	pts := dedupePoints(points)
	if len(pts) < 3 {
		return Hull(pts)
	}

	anchor := pts[canonicalPoint(pts)]
	rest := make([]*Point, 0, len(pts)-1)
	for _, p := range pts {
		if p != anchor {
			rest = append(rest, p)
		}
	}

	sort.Slice(rest, func(i, j int) bool {
		o := OrientationOf(anchor, rest[i], rest[j])
		if o != Collinear {
			return o == CounterClockwise
		}
		// Equal angle: nearer point first, so the farthest ends up last in
		// its angle class.
		return anchor.DistSq(rest[i]) < anchor.DistSq(rest[j])
	})

	// Collapse each angle class to its farthest point. Because the anchor is
	// the Below-minimum, collinear-through-anchor points are always on the
	// same ray, never on opposite sides.
	byAngle := rest[:0]
	for _, p := range rest {
		if len(byAngle) > 0 && OrientationOf(anchor, byAngle[len(byAngle)-1], p) == Collinear {
			byAngle[len(byAngle)-1] = p
			continue
		}
		byAngle = append(byAngle, p)
	}

	// All points on one ray through the anchor: the hull degenerates to the
	// anchor and the far end of the ray.
	if len(byAngle) < 2 {
		return canonicalize(append([]*Point{anchor}, byAngle...))
	}

	stack := PointStack{anchor, byAngle[0]}
	for _, p := range byAngle[1:] {
		for stack.Len() >= 2 && OrientationOf(stack.PeekUnder(), stack.Peek(), p) != CounterClockwise {
			stack.Pop()
		}
		stack.Push(p)
	}

	return canonicalize(stack)
}
