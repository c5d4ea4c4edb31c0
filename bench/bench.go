// The comparison harness: runs the hull algorithms and the intersection
// detectors over caller-supplied inputs and reports wall time per call next
// to each algorithm's expected complexity class. Input generation is the
// caller's problem; this package only times and tabulates.
package bench

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/planar"
)

// One timed call. The field set (algorithm name, dataset size, elapsed time,
// complexity class) is the stable contract: report generation downstream
// parses Table output, so columns are only ever added, not changed.
type Result struct {
	Algorithm  string
	Size       int
	Elapsed    time.Duration
	Complexity string
}

// Hulls times each algorithm over the same point set. With no algorithms
// given, it runs all five. Runs are sequential; each call owns its working
// state exclusively, so callers that want parallel timing can shard inputs
// across goroutines themselves.
func Hulls(points []*planar.Point, algorithms ...planar.Algorithm) []Result {
	if len(algorithms) == 0 {
		algorithms = planar.Algorithms()
	}
	results := make([]Result, 0, len(algorithms))
	for _, algorithm := range algorithms {
		start := time.Now()
		planar.ConvexHull(algorithm, points)
		results = append(results, Result{
			Algorithm:  algorithm.String(),
			Size:       len(points),
			Elapsed:    time.Since(start),
			Complexity: algorithm.Complexity(),
		})
	}
	return results
}

// Intersections times the three detectors over the same segment set: the two
// quadratic pairwise predicates and the sweep.
func Intersections(segments []*planar.Segment) ([]Result, error) {
	results := make([]Result, 0, 3)

	for _, method := range []planar.IntersectMethod{planar.MethodOrientation, planar.MethodCrossProduct} {
		start := time.Now()
		if _, err := planar.PairwiseIntersections(segments, method); err != nil {
			return nil, err
		}
		results = append(results, Result{
			Algorithm:  fmt.Sprintf("pairwise (%s)", method),
			Size:       len(segments),
			Elapsed:    time.Since(start),
			Complexity: "O(n²)",
		})
	}

	start := time.Now()
	if _, err := planar.SweepIntersections(segments); err != nil {
		return nil, err
	}
	results = append(results, Result{
		Algorithm:  "sweep line",
		Size:       len(segments),
		Elapsed:    time.Since(start),
		Complexity: "O((n + k) log n)",
	})

	return results, nil
}

// Table renders results as an aligned table. Column order is part of the
// stable output contract; only the header carries color.
func Table(results []Result) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		aurora.Bold("ALGORITHM"), aurora.Bold("SIZE"), aurora.Bold("TIME"), aurora.Bold("COMPLEXITY"))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Algorithm, r.Size, r.Elapsed, r.Complexity)
	}
	w.Flush()
	return buf.String()
}
