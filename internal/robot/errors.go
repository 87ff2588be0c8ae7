package robot

import "errors"

// Domain errors for robot state operations.
var (
	// ErrLegIndex indicates a leg index outside the fixed leg range.
	ErrLegIndex = errors.New("robot: leg index out of range")

	// ErrInvalidConfig indicates a non-positive capacity, count or
	// tolerance at construction time.
	ErrInvalidConfig = errors.New("robot: invalid configuration")

	// ErrInvalidState indicates NaN or Inf in the pose after an update.
	ErrInvalidState = errors.New("robot: invalid state (NaN or Inf detected)")
)
