package walk

import (
	"fmt"

	"github.com/pkg/errors"
)

// NeighborWindowError is returned before planning when the neighbor window cannot be served by the
// candidate pool, which holds the space minus the current position.
type NeighborWindowError struct {
	Neighbors int
	SpaceSize int
}

func (e *NeighborWindowError) Error() string {
	return fmt.Sprintf("neighbor window %d must be in [0, %d) for a space of %d quaternions",
		e.Neighbors, e.SpaceSize-1, e.SpaceSize)
}

// NewNeighborWindowError returns a NeighborWindowError.
func NewNeighborWindowError(neighbors, spaceSize int) error {
	return &NeighborWindowError{Neighbors: neighbors, SpaceSize: spaceSize}
}

// NewNegativeStepsError is returned when a negative step count is requested.
func NewNegativeStepsError(steps int) error {
	return errors.Errorf("step count must not be negative, got %d", steps)
}
