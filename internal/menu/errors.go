package menu

import "errors"

var (
	// ErrInvalidArgument reports bad counts, slots or patterns at setup time.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports an operation the registry or button cannot accept in
	// its current state, such as switching numbering modes.
	ErrInvalidState = errors.New("invalid state")
	// ErrDimensionMismatch is returned for border patterns that do not match the page.
	ErrDimensionMismatch = dimensionError{}
)

type dimensionError struct{}

func (dimensionError) Error() string { return "dimension mismatch" }

func (dimensionError) Is(target error) bool {
	return target == ErrInvalidArgument
}
