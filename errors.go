package tomato

import (
	"errors"
	"fmt"
)

// ErrNonFiniteDensity is the sentinel wrapped by NonFiniteDensityError.
var ErrNonFiniteDensity = errors.New("tomato: non-finite density value")

// ErrInvalidTau is returned when τ is negative or NaN.
var ErrInvalidTau = errors.New("tomato: tau must be >= 0")

// ErrDensityLengthMismatch is returned when len(density) != graph.N().
var ErrDensityLengthMismatch = errors.New("tomato: density length does not match graph size")

// NonFiniteDensityError reports the first index at which density is NaN
// or infinite.
type NonFiniteDensityError struct {
	Index int
}

func (e *NonFiniteDensityError) Error() string {
	return fmt.Sprintf("tomato: non-finite density value at index %d", e.Index)
}

func (e *NonFiniteDensityError) Unwrap() error { return ErrNonFiniteDensity }
