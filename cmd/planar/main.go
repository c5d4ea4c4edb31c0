package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/planar"
	"github.com/osuushi/planar/bench"
)

// CLI glue around the library. Geometry comes in on stdin, one entry per
// line: "x y" for points, "x1 y1 x2 y2" for segments. Blank lines are
// skipped. None of this is validated beyond parsing; degenerate segments are
// rejected by the library itself.

var (
	app = kingpin.New("planar", "Convex hulls and segment intersection from the command line.")

	hullCmd  = app.Command("hull", "Read points from stdin and print the convex hull.")
	hullAlgo = hullCmd.Flag("algorithm", "Hull algorithm: brute, jarvis, graham, quickhull, or chain.").
			Default("graham").Enum("brute", "jarvis", "graham", "quickhull", "chain")
	hullPNG = hullCmd.Flag("png", "Also render the hull to this PNG file.").String()
	hullCat = hullCmd.Flag("cat", "Display the rendered PNG inline (iTerm only).").Bool()

	intersectCmd   = app.Command("intersect", "Read segments from stdin and print intersecting pairs.")
	intersectSweep = intersectCmd.Flag("sweep", "Use the sweep line detector instead of the pairwise scan.").Bool()
	intersectPNG   = intersectCmd.Flag("png", "Also render the segments to this PNG file, intersecting ones in blue.").String()

	benchCmd   = app.Command("bench", "Time every algorithm over random inputs.")
	benchSizes = benchCmd.Flag("size", "Dataset size; repeat for multiple rows.").Default("100", "1000").Ints()
	benchSeed  = benchCmd.Flag("seed", "Random seed for input generation.").Default("0").Int64()
)

var algorithmsByName = map[string]planar.Algorithm{
	"brute":     planar.BruteForce,
	"jarvis":    planar.JarvisMarch,
	"graham":    planar.GrahamScan,
	"quickhull": planar.QuickHull,
	"chain":     planar.MonotoneChain,
}

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case hullCmd.FullCommand():
		runHull()
	case intersectCmd.FullCommand():
		runIntersect()
	case benchCmd.FullCommand():
		runBench()
	}
}

func runHull() {
	points := readPoints(os.Stdin)
	hull := planar.ConvexHull(algorithmsByName[*hullAlgo], points)
	for _, p := range hull {
		fmt.Printf("%v %v\n", p.X, p.Y)
	}
	if *hullPNG != "" {
		if err := planar.RenderHullPNG(points, hull, 1, *hullPNG); err != nil {
			app.Fatalf("rendering %s: %v", *hullPNG, err)
		}
		if *hullCat {
			planar.CatPNG(*hullPNG)
		}
	}
}

func runIntersect() {
	segments := readSegments(os.Stdin)

	var pairs []planar.SegmentPair
	var err error
	if *intersectSweep {
		pairs, err = planar.SweepIntersections(segments)
	} else {
		pairs, err = planar.PairwiseIntersections(segments, planar.MethodOrientation)
	}
	if err != nil {
		app.Fatalf("%v", err)
	}

	index := make(map[*planar.Segment]int, len(segments))
	for i, s := range segments {
		index[s] = i
	}
	for _, pair := range pairs {
		fmt.Printf("%d %d\n", index[pair.A], index[pair.B])
	}

	if *intersectPNG != "" {
		if err := planar.RenderSegmentsPNG(segments, pairs, 1, *intersectPNG); err != nil {
			app.Fatalf("rendering %s: %v", *intersectPNG, err)
		}
	}
}

func runBench() {
	r := rand.New(rand.NewSource(*benchSeed))
	var results []bench.Result
	for _, size := range *benchSizes {
		results = append(results, bench.Hulls(randomPoints(r, size))...)
	}
	for _, size := range *benchSizes {
		rows, err := bench.Intersections(randomSegments(r, size))
		if err != nil {
			app.Fatalf("%v", err)
		}
		results = append(results, rows...)
	}
	fmt.Print(bench.Table(results))
}

func readPoints(in *os.File) []*planar.Point {
	var points []*planar.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			app.Fatalf("expected \"x y\", got %q", scanner.Text())
		}
		points = append(points, &planar.Point{X: parseCoord(fields[0]), Y: parseCoord(fields[1])})
	}
	return points
}

func readSegments(in *os.File) []*planar.Segment {
	var segments []*planar.Segment
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			app.Fatalf("expected \"x1 y1 x2 y2\", got %q", scanner.Text())
		}
		segments = append(segments, &planar.Segment{
			Start: &planar.Point{X: parseCoord(fields[0]), Y: parseCoord(fields[1])},
			End:   &planar.Point{X: parseCoord(fields[2]), Y: parseCoord(fields[3])},
		})
	}
	return segments
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		app.Fatalf("bad coordinate %q: %v", s, err)
	}
	return v
}

func randomPoints(r *rand.Rand, n int) []*planar.Point {
	points := make([]*planar.Point, n)
	for i := range points {
		points[i] = &planar.Point{X: r.Float64() * 1000, Y: r.Float64() * 1000}
	}
	return points
}

// Random segments with a bounded length, so that intersection counts stay
// interesting instead of approaching all-pairs.
func randomSegments(r *rand.Rand, n int) []*planar.Segment {
	segments := make([]*planar.Segment, n)
	for i := range segments {
		start := planar.Point{X: r.Float64() * 1000, Y: r.Float64() * 1000}
		end := planar.Point{X: start.X + r.Float64()*50 + 1, Y: start.Y + r.Float64()*50 + 1}
		segments[i] = &planar.Segment{Start: &start, End: &end}
	}
	return segments
}
