// Package core defines the domain model for towergrid: the city grid,
// cell states, the tower catalog, and committed placements.
package core

import "fmt"

// CellState classifies a single grid cell.
type CellState uint8

const (
	Free       CellState = iota // not obstructed, not yet covered
	Obstructed                  // fixed at construction, never changes
	Covered                     // inside the range of at least one tower
)

func (s CellState) String() string {
	return [...]string{"Free", "Obstructed", "Covered"}[s]
}

// Coord is a (row, col) grid coordinate.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|) between two coordinates.
// Tower coverage and tower adjacency are both square-shaped under
// this metric.
func Chebyshev(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// TowerType is a named tier with a coverage radius and a cost.
type TowerType struct {
	Name  string
	Range int // Chebyshev radius, >= 0
	Cost  int // > 0
}

// Catalog is an ordered list of tower types. Declaration order matters:
// the optimizer breaks value ties by scanning types in catalog order.
type Catalog []TowerType

// DefaultCatalog returns the standard small/medium/large tiers.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "small", Range: 1, Cost: 15},
		{Name: "medium", Range: 2, Cost: 30},
		{Name: "large", Range: 3, Cost: 60},
	}
}

// Validate checks catalog consistency.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for _, t := range c {
		if t.Range < 0 {
			return fmt.Errorf("%w: type %q has negative range %d", ErrBadTowerType, t.Name, t.Range)
		}
		if t.Cost <= 0 {
			return fmt.Errorf("%w: type %q has non-positive cost %d", ErrBadTowerType, t.Name, t.Cost)
		}
	}
	return nil
}

// MinCost returns the cheapest cost in the catalog.
func (c Catalog) MinCost() int {
	min := 0
	for i, t := range c {
		if i == 0 || t.Cost < min {
			min = t.Cost
		}
	}
	return min
}

// Placement is a committed tower: a coordinate plus the type placed there.
// Placements are permanent; there is no removal or relocation.
type Placement struct {
	At   Coord
	Type TowerType
}
