package internal

type Point struct {
	X float64
	Y float64
}

// Note that all points involved with the algorithms are pointers. This means
// they can be used as keys, and a hull can hand back the caller's own points.
// We should never modify a point value once it has entered an algorithm, since
// some applications require exact equality, and we cannot tolerate loss of
// precision.
type Segment struct {
	Start *Point
	End   *Point
}

// A pair of segments found to intersect. Pairs are reported by identity (the
// caller's own *Segment values), never by coordinates, so the caller does not
// have to re-derive which segments were involved.
type SegmentPair struct {
	A *Segment
	B *Segment
}

// A convex polygon in strict counterclockwise order, starting from the
// canonical point (lowest Y, then lowest X). With fewer than three points it
// is degenerate: just the distinct input points.
type Hull []*Point

type PointStack []*Point

type PointSet map[Point]struct{}
