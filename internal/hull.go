package internal

// Plumbing shared by the five hull algorithms. Every algorithm funnels
// through the same de-duplication and the same canonical output form, which
// is what makes their results directly comparable: identical vertex sets, in
// identical counterclockwise order, starting from the same point.

// Algorithm selects a hull construction strategy. The five strategies share
// one contract and differ only in how they get there, so they are dispatched
// by tag rather than modeled as a type hierarchy.
type Algorithm int

const (
	BruteForce Algorithm = iota
	JarvisMarch
	GrahamScan
	QuickHull
	MonotoneChain
)

func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute force"
	case JarvisMarch:
		return "jarvis march"
	case GrahamScan:
		return "graham scan"
	case QuickHull:
		return "quickhull"
	case MonotoneChain:
		return "monotone chain"
	}
	return "unknown"
}

// Complexity is the expected asymptotic class, as reported to the benchmark
// component. h is the hull size.
func (a Algorithm) Complexity() string {
	switch a {
	case BruteForce:
		return "O(n³)"
	case JarvisMarch:
		return "O(nh)"
	case QuickHull:
		return "O(n log n) avg, O(n²) worst"
	default:
		return "O(n log n)"
	}
}

// Algorithms lists every hull strategy, in tag order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, JarvisMarch, GrahamScan, QuickHull, MonotoneChain}
}

// Hull dispatches to the selected strategy. Unknown tags fall back to
// monotone chain rather than failing; there is no invalid input to a hull.
func (a Algorithm) Hull(points []*Point) Hull {
	switch a {
	case BruteForce:
		return HullBruteForce(points)
	case JarvisMarch:
		return HullJarvisMarch(points)
	case GrahamScan:
		return HullGrahamScan(points)
	case QuickHull:
		return HullQuickHull(points)
	}
	return HullMonotoneChain(points)
}

// Remove exact coordinate duplicates, keeping the first pointer seen for each
// coordinate, in input order. Algorithms never mutate the result; anything
// that needs a sorted order sorts its own copy.
func dedupePoints(points []*Point) []*Point {
	seen := make(PointSet, len(points))
	distinct := make([]*Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[*p]; ok {
			continue
		}
		seen[*p] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}

// The Below-minimum of the points: lowest Y, then lowest X. This is the
// canonical point every hull starts from, and the anchor for polar sorting.
func canonicalPoint(points []*Point) int {
	min := 0
	for i, p := range points {
		if p.Below(points[min]) {
			min = i
		}
	}
	return min
}

// Rotate a counterclockwise vertex loop so that it starts at the canonical
// point. The algorithms each produce a CCW loop with their own start; this
// makes their outputs comparable vertex for vertex.
func canonicalize(vertices []*Point) Hull {
	if len(vertices) == 0 {
		return Hull{}
	}
	start := canonicalPoint(vertices)
	hull := make(Hull, 0, len(vertices))
	for i := range vertices {
		hull = append(hull, vertices[CircularIndex(start+i, len(vertices))])
	}
	return hull
}

// Contains reports whether p lies on or inside the hull boundary. For a
// proper hull this is the all-edges-left test; degenerate hulls of one or two
// points degrade to coordinate and on-segment checks.
func (h Hull) Contains(p *Point) bool {
	switch len(h) {
	case 0:
		return false
	case 1:
		return *h[0] == *p
	case 2:
		return OrientationOf(h[0], h[1], p) == Collinear && onSegment(h[0], p, h[1])
	}
	for i, vertex := range h {
		next := h[CircularIndex(i+1, len(h))]
		if Cross(vertex, next, p) < 0 {
			return false
		}
	}
	return true
}
