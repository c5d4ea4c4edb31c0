package internal

import "sort"

// HullMonotoneChain is Andrew's variant of the scan: sort by (x, then y)
// ascending, then build the lower and upper chains independently with the
// same strict-turn stack rule as Graham scan, and concatenate them, dropping
// each chain's final point (it starts the other chain). Strict turns exclude
// collinear boundary points from both chains. O(n log n), with a much
// friendlier constant than the polar sort.
func HullMonotoneChain(points []*Point) Hull {
	pts := dedupePoints(points)
	if len(pts) < 3 {
		return Hull(pts)
	}

	sorted := make([]*Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var lower PointStack
	for _, p := range sorted {
		for lower.Len() >= 2 && OrientationOf(lower.PeekUnder(), lower.Peek(), p) != CounterClockwise {
			lower.Pop()
		}
		lower.Push(p)
	}

	var upper PointStack
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for upper.Len() >= 2 && OrientationOf(upper.PeekUnder(), upper.Peek(), p) != CounterClockwise {
			upper.Pop()
		}
		upper.Push(p)
	}

	// The lower chain ends where the upper chain begins and vice versa.
	vertices := append(lower[:lower.Len()-1], upper[:upper.Len()-1]...)
	return canonicalize(vertices)
}
