package offset

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate reports a site configuration for which no finite
	// solution exists: parallel lines, concentric circles, a separator
	// parallel to the third site's growth.
	ErrDegenerate = errors.New("degenerate input")
	// ErrDomain reports evaluation of a bisector at a parameter where its
	// radical is negative.
	ErrDomain = errors.New("parameter outside bisector domain")
	// ErrInvalidSite reports a site that breaks its construction contract,
	// such as an unnormalized line or a negative radius.
	ErrInvalidSite = errors.New("invalid site")
	// ErrNoSolution reports an apex whose offset distance would be negative.
	ErrNoSolution = errors.New("no solution in range")
)

// GeometryError describes a failed kernel operation. Err is one of the
// package's sentinel errors and can be tested for with [errors.Is].
type GeometryError struct {
	Op     string
	Err    error
	Detail string
}

func (e *GeometryError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("offset: %s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("offset: %s: %s (%s)", e.Op, e.Err, e.Detail)
}

func (e *GeometryError) Unwrap() error { return e.Err }

func errorf(op string, err error, format string, args ...any) error {
	return &GeometryError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}
