package game

import "github.com/pkg/errors"

var (
	// ErrConfiguration is returned when a board cannot be built from the
	// requested size and mine count
	ErrConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

func outOfBounds(row, col, size int) error {
	return errors.Wrapf(ErrOutOfBounds, "(%d, %d) on a %dx%d board", row, col, size, size)
}
