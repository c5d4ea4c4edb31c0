package internal

// Orientation of an ordered point triple. The values are chosen so that the
// sign of the cross product and the sign of the Orientation agree, which keeps
// comparisons like `orientation == CounterClockwise` and `cross > 0`
// interchangeable.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// Cross product of the vectors (b-a) and (c-a). Positive when the triple
// a, b, c turns counterclockwise, negative when it turns clockwise, and zero
// exactly when the three points are collinear.
//
// This is the one predicate every algorithm in the package is built on. The
// hull algorithms and the intersection tests must share it; two components
// with disagreeing sign conventions is the defect class this file exists to
// prevent.
func Cross(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// OrientationOf classifies the turn made by the triple a, b, c. The collinear
// case is an exact zero; there is no tolerance. See Point.Below for why the
// package stays exact.
func OrientationOf(a, b, c *Point) Orientation {
	cross := Cross(a, b, c)
	if cross > 0 {
		return CounterClockwise
	}
	if cross < 0 {
		return Clockwise
	}
	return Collinear
}
