package shapes

import "github.com/pkg/errors"

var (
	ErrDegenerateSegment   = errors.New("degenerate segment")
	ErrDegenerateTriangle  = errors.New("degenerate triangle")
	ErrDegenerateRectangle = errors.New("degenerate rectangle")
	ErrInvalidTopology     = errors.New("invalid topology")
	ErrNotSupported        = errors.New("not supported")
)

// Threading errors through every step of a construction pipeline would make
// the steps noisy. Instead the steps throw, and the public constructors recover
// and convert back into an error. A shape is either returned fully built or
// not at all.

type shapeError struct {
	err error
}

func throw(err error) {
	panic(shapeError{err})
}

func throwf(cause error, format string, args ...interface{}) {
	throw(wrapf(cause, format, args...))
}

// Converts a recovered shapeError back into an error. Any other panic is
// rethrown, since it is a genuine bug rather than bad geometry.
func handleShapePanicRecover(r interface{}) error {
	if r != nil {
		if se, ok := r.(shapeError); ok {
			return se.err
		}
		panic(r)
	}
	return nil
}

func wrapf(cause error, format string, args ...interface{}) error {
	return errors.Wrapf(cause, format, args...)
}
