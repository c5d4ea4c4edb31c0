package internal

import "github.com/pkg/errors"

// Threading errors up through the sweep loop and the recursive hull routines
// would add a lot of plumbing for a single failure mode. Instead, we use
// panics, and the public API recovers to convert to an error.

type GeometryError error

// ErrInvalidSegment is the only caller-visible failure in the package: a
// segment whose two endpoints are coordinate-equal. It signals a precondition
// violation; callers must filter degenerate segments before submission.
var ErrInvalidSegment = errors.New("invalid segment: endpoints are equal")

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

func throwInvalidSegment(s *Segment) {
	panic(GeometryError(errors.Wrapf(ErrInvalidSegment, "degenerate segment at (%v, %v)", s.Start.X, s.Start.Y)))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
