package unit

import "errors"

var (
	// ErrInvalid reports invalid construction parameters.
	ErrInvalid = errors.New("invalid unit construction")

	// ErrUnsupported reports an algebraic operation a unit kind does
	// not support (e.g. multiplying an offset or logarithmic unit).
	ErrUnsupported = errors.New("unsupported unit operation")

	// ErrNotConvertible reports dimensionally incompatible units.
	ErrNotConvertible = errors.New("units are not convertible")
)
