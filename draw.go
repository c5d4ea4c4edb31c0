package planar

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering for the visualization side of the package: hulls and intersection
// results drawn to PNG, with optional inline display for terminals that
// support it (iTerm only).

// Padding around the geometry so points on the bounding box stay visible
const drawPadding = 20

// RenderHullPNG draws the point set with its hull closed in red, in the style
// of the interactive canvas this package grew out of: white dots for points,
// red edges between consecutive hull vertices.
func RenderHullPNG(points []*Point, hull Hull, scale float64, path string) error {
	c := newContext(pointBounds(points), scale)

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	if len(hull) >= 2 {
		c.SetLineWidth(2 / scale)
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(1, 0, 0)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// RenderSegmentsPNG draws a segment set, coloring the members of the given
// intersection pairs blue and everything else red, matching the original
// canvas convention of blue-if-intersecting.
func RenderSegmentsPNG(segments []*Segment, pairs []SegmentPair, scale float64, path string) error {
	intersecting := make(map[*Segment]struct{}, 2*len(pairs))
	for _, pair := range pairs {
		intersecting[pair.A] = struct{}{}
		intersecting[pair.B] = struct{}{}
	}

	var points []*Point
	for _, s := range segments {
		points = append(points, s.Start, s.End)
	}
	c := newContext(pointBounds(points), scale)

	c.SetLineWidth(2 / scale)
	for _, s := range segments {
		if _, ok := intersecting[s]; ok {
			c.SetRGB(0, 0, 1)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// CatPNG displays a rendered file inline in the terminal.
func CatPNG(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func pointBounds(points []*Point) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	return b
}

// Set up a context over the bounding box with the origin at the bottom left,
// so the drawing shares the algorithms' coordinate system rather than the
// image's y-down one.
func newContext(b bounds, scale float64) *gg.Context {
	width := int(scale*(b.maxX-b.minX)) + drawPadding*2
	height := int(scale*(b.maxY-b.minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-b.minX, -b.minY)

	return c
}
