package wrapped

import "errors"

// Precondition violations. Constructors wrap these with the offending value,
// so match them with errors.Is.
var (
	ErrInvalidColumns  = errors.New("wrapped: columns must be at least 1")
	ErrNilHeightFunc   = errors.New("wrapped: height function is nil")
	ErrNilLayout       = errors.New("wrapped: layout is nil")
	ErrNegativeBuffer  = errors.New("wrapped: buffer must not be negative")
	ErrInvalidSlack    = errors.New("wrapped: slack divisor must be positive")
	ErrInvalidCoverage = errors.New("wrapped: coverage factor must be positive")
)
