package core

import "errors"

// Sentinel errors for grid construction and placement.
var (
	// ErrBadDimensions is returned for non-positive grid dimensions.
	ErrBadDimensions = errors.New("core: grid dimensions must be positive")

	// ErrInvalidPlacement is returned when a tower is placed out of
	// bounds or on an obstructed cell.
	ErrInvalidPlacement = errors.New("core: invalid placement")

	// ErrEmptyCatalog is returned when a tower catalog has no types.
	ErrEmptyCatalog = errors.New("core: tower catalog is empty")

	// ErrBadTowerType is returned for a type with negative range or
	// non-positive cost.
	ErrBadTowerType = errors.New("core: invalid tower type")
)
