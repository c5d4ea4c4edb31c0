package internal

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a
// slightly rotated coordinate system, giving a total order over distinct
// points. The lowest point under this order is the canonical point that every
// hull starts from.
//
// Unlike some geometry code, the comparison is exact. All of the collinear
// inclusion rules in the hull algorithms are defined in terms of an exact zero
// cross product, and a tolerance here would have to be re-derived through
// every one of them.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return !p.Below(otherPoint)
}

// Squared distance, for comparisons where the square root would be wasted.
func (p *Point) DistSq(otherPoint *Point) float64 {
	dx := p.X - otherPoint.X
	dy := p.Y - otherPoint.Y
	return dx*dx + dy*dy
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// The point below the top of the stack. The stack-popping rule in Graham scan
// and monotone chain always looks at the last two points together with a
// candidate.
func (s *PointStack) PeekUnder() *Point {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s *PointStack) Len() int {
	return len(*s)
}
