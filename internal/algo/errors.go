package algo

import "errors"

// Sentinel errors for optimizer construction and path queries.
var (
	// ErrNegativeBudget is returned when an optimizer is built with a
	// budget below zero.
	ErrNegativeBudget = errors.New("algo: budget must be non-negative")

	// ErrNilGrid is returned when an optimizer is built without a grid.
	ErrNilGrid = errors.New("algo: grid is nil")

	// ErrUnknownTower is returned by ShortestPath when an endpoint is
	// not a committed placement.
	ErrUnknownTower = errors.New("algo: coordinate is not a placed tower")

	// ErrNoPath is returned by ShortestPath when the endpoints are not
	// connected at the requested radius. It is an ordinary query
	// outcome, not a failure of the run.
	ErrNoPath = errors.New("algo: no path between towers")
)
