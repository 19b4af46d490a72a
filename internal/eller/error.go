package eller

import "errors"

var (
	ErrInvalidDimensions  = errors.New("maze width and height must be at least 1")
	ErrUnknownOrientation = errors.New("unknown orientation")
	ErrNoRandSource       = errors.New("no random source")
	ErrEmptyMaze          = errors.New("maze has no rows")
	ErrMalformed          = errors.New("malformed maze")
	ErrNotPerfect         = errors.New("maze is not perfect")
)

// AssertionError reports a broken generator invariant. It is raised with
// panic inside the builder and only turned into an error by [Generate].
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
