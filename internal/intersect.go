package internal

import "math"

// Two formulations of the segment intersection test. SegmentsIntersect is the
// three-way orientation version; CrossProductTest reaches the same answer by
// comparing raw cross product signs. Both are kept because comparing them is
// part of the package's reason to exist, and both must agree on every input.

func (s *Segment) validate() {
	if s.Start.X == s.End.X && s.Start.Y == s.End.Y {
		throwInvalidSegment(s)
	}
}

// Check if point q lies on the segment p-r, assuming the three points are
// already known to be collinear. The projection check has to cover both axes,
// or vertical segments would always report true.
func onSegment(p, q, r *Point) bool {
	return math.Min(p.X, r.X) <= q.X && q.X <= math.Max(p.X, r.X) &&
		math.Min(p.Y, r.Y) <= q.Y && q.Y <= math.Max(p.Y, r.Y)
}

// SegmentsIntersect reports whether two segments intersect, using the
// orientation predicate. The general case is the straddle test: the endpoints
// of each segment must lie on opposite sides of the other segment's line.
//
// The collinear-overlap boundary case is handled separately: when all four
// orientations are zero, the segments lie on one line, and they intersect iff
// their 1-D projections overlap. Touching at a single shared endpoint counts
// as intersecting.
func (s1 *Segment) SegmentsIntersect(s2 *Segment) bool {
	s1.validate()
	s2.validate()

	o1 := OrientationOf(s1.Start, s1.End, s2.Start)
	o2 := OrientationOf(s1.Start, s1.End, s2.End)
	o3 := OrientationOf(s2.Start, s2.End, s1.Start)
	o4 := OrientationOf(s2.Start, s2.End, s1.End)

	// General case: each segment straddles the other's line.
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear boundary cases. An endpoint with zero orientation lies on the
	// other segment's line; it intersects only if it also lies within the
	// segment itself.
	if o1 == Collinear && onSegment(s1.Start, s2.Start, s1.End) {
		return true
	}
	if o2 == Collinear && onSegment(s1.Start, s2.End, s1.End) {
		return true
	}
	if o3 == Collinear && onSegment(s2.Start, s1.Start, s2.End) {
		return true
	}
	if o4 == Collinear && onSegment(s2.Start, s1.End, s2.End) {
		return true
	}

	return false
}

// CrossProductTest is the alternate formulation of SegmentsIntersect. It
// computes the same straddle condition by multiplying raw cross products
// instead of comparing the three-way enum. It exists for the comparative
// benchmark, not for correctness redundancy, so it must stay numerically
// consistent with SegmentsIntersect on every input.
func (s1 *Segment) CrossProductTest(s2 *Segment) bool {
	s1.validate()
	s2.validate()

	d1 := Cross(s2.Start, s2.End, s1.Start)
	d2 := Cross(s2.Start, s2.End, s1.End)
	d3 := Cross(s1.Start, s1.End, s2.Start)
	d4 := Cross(s1.Start, s1.End, s2.End)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(s2.Start, s1.Start, s2.End):
		return true
	case d2 == 0 && onSegment(s2.Start, s1.End, s2.End):
		return true
	case d3 == 0 && onSegment(s1.Start, s2.Start, s1.End):
		return true
	case d4 == 0 && onSegment(s1.Start, s2.End, s1.End):
		return true
	}
	return false
}

// IntersectMethod selects which pairwise predicate PairwiseIntersections
// drives. The two methods always agree; they differ only in cost, which is
// what the benchmark component compares.
type IntersectMethod int

const (
	MethodOrientation IntersectMethod = iota
	MethodCrossProduct
)

func (m IntersectMethod) String() string {
	switch m {
	case MethodCrossProduct:
		return "cross product"
	default:
		return "ccw"
	}
}

func (m IntersectMethod) test(s1, s2 *Segment) bool {
	if m == MethodCrossProduct {
		return s1.CrossProductTest(s2)
	}
	return s1.SegmentsIntersect(s2)
}

// PairwiseIntersections is the quadratic reference detector: every pair of
// segments is tested directly. It reports each intersecting pair exactly
// once, in input order. The sweep detector is checked against this.
func PairwiseIntersections(segments []*Segment, method IntersectMethod) []SegmentPair {
	for _, s := range segments {
		s.validate()
	}
	var pairs []SegmentPair
	for i, a := range segments {
		for _, b := range segments[i+1:] {
			if method.test(a, b) {
				pairs = append(pairs, SegmentPair{A: a, B: b})
			}
		}
	}
	return pairs
}
