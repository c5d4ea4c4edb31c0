// A computational geometry toolkit for the plane.
//
// This package provides two algorithm families over a shared set of
// primitives: line segment intersection testing (a pair of pairwise
// predicates plus a sweep line detector) and convex hull construction by five
// interchangeable algorithms. All of them share one orientation predicate and
// one output contract, so their results can be compared directly. The package
// exists as much for racing the algorithms against each other as for using
// any one of them.
package planar

import "github.com/osuushi/planar/internal"

type Point = internal.Point
type Segment = internal.Segment
type SegmentPair = internal.SegmentPair
type Hull = internal.Hull
type Orientation = internal.Orientation
type Algorithm = internal.Algorithm
type IntersectMethod = internal.IntersectMethod

const (
	Clockwise        = internal.Clockwise
	Collinear        = internal.Collinear
	CounterClockwise = internal.CounterClockwise
)

const (
	BruteForce    = internal.BruteForce
	JarvisMarch   = internal.JarvisMarch
	GrahamScan    = internal.GrahamScan
	QuickHull     = internal.QuickHull
	MonotoneChain = internal.MonotoneChain
)

const (
	MethodOrientation  = internal.MethodOrientation
	MethodCrossProduct = internal.MethodCrossProduct
)

// ErrInvalidSegment is returned (wrapped) whenever a segment with
// coordinate-equal endpoints reaches an intersection routine. Filter
// degenerate segments out before submission; they are never recoverable
// internally.
var ErrInvalidSegment = internal.ErrInvalidSegment

// OrientationOf classifies the turn made by the ordered triple a, b, c as
// clockwise, counterclockwise, or collinear. Collinear is an exact zero cross
// product; the package uses no tolerance anywhere.
func OrientationOf(a, b, c *Point) Orientation {
	return internal.OrientationOf(a, b, c)
}

// SegmentsIntersect reports whether two segments intersect, including
// touching at an endpoint and collinear overlap. It fails only for degenerate
// segments.
func SegmentsIntersect(s1, s2 *Segment) (result bool, err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return s1.SegmentsIntersect(s2), nil
}

// CrossProductTest answers the same question as SegmentsIntersect through the
// raw cross product sign formulation. The two always agree; this one exists
// so the formulations can be benchmarked against each other.
func CrossProductTest(s1, s2 *Segment) (result bool, err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return s1.CrossProductTest(s2), nil
}

// PairwiseIntersections tests every pair of segments with the selected
// predicate and returns each intersecting pair once. Quadratic, exact, and
// the reference the sweep detector is measured against.
func PairwiseIntersections(segments []*Segment, method IntersectMethod) (pairs []SegmentPair, err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			pairs = nil
			err = recoveredErr
		}
	}()
	return internal.PairwiseIntersections(segments, method), nil
}

// SweepIntersections finds intersecting segment pairs with a left-to-right
// sweep in O((n + k) log n). Only segments that become adjacent in the sweep
// status are tested against each other, so the result is a subset of
// PairwiseIntersections: crossings between segments that never become
// adjacent are missed. That adjacency-only behavior is a documented property
// of this variant of the algorithm, kept deliberately.
func SweepIntersections(segments []*Segment) (pairs []SegmentPair, err error) {
	defer func() {
		if recoveredErr := internal.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			pairs = nil
			err = recoveredErr
		}
	}()
	return internal.SweepIntersections(segments), nil
}

// ConvexHull builds the convex hull of the points with the selected
// algorithm. Duplicates are removed first; fewer than three distinct points
// give the degenerate hull of the points themselves, never an error. The
// result is in counterclockwise order starting from the lowest-then-leftmost
// point, with collinear boundary points excluded, identically for every
// algorithm.
func ConvexHull(algorithm Algorithm, points []*Point) Hull {
	return algorithm.Hull(points)
}

// Algorithms lists the five hull algorithms, for callers that want to run
// them all (the benchmark does).
func Algorithms() []Algorithm {
	return internal.Algorithms()
}

// One entry point per hull algorithm, with identical signatures so they can
// be swapped for comparison.

func ConvexHullBruteForce(points []*Point) Hull    { return internal.HullBruteForce(points) }
func ConvexHullJarvisMarch(points []*Point) Hull   { return internal.HullJarvisMarch(points) }
func ConvexHullGrahamScan(points []*Point) Hull    { return internal.HullGrahamScan(points) }
func ConvexHullQuickHull(points []*Point) Hull     { return internal.HullQuickHull(points) }
func ConvexHullMonotoneChain(points []*Point) Hull { return internal.HullMonotoneChain(points) }
