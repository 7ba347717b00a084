package core

import "fmt"

// Grid is the n×m city grid. Cells are stored in a flat row-major
// slice. Obstructions are fixed once placements start; placements
// accumulate and are never removed.
type Grid struct {
	rows, cols int
	cells      []CellState
	placements []Placement
}

// NewGrid creates a fully-free grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// NewGridFromLayout creates a grid from an obstruction mask.
// layout[r][c] == true marks (r,c) obstructed. All rows must have the
// same length.
func NewGridFromLayout(layout [][]bool) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrBadDimensions)
	}
	g, err := NewGrid(len(layout), len(layout[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range layout {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: ragged layout row %d", ErrBadDimensions, r)
		}
		for c, obstructed := range row {
			if obstructed {
				g.cells[r*g.cols+c] = Obstructed
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of cell c. Out-of-bounds coordinates report
// Obstructed so callers never treat them as placeable.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		return Obstructed
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// Obstruct marks cell c obstructed. Only legal before the first
// placement; the obstruction layout is fixed for the whole run.
func (g *Grid) Obstruct(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrInvalidPlacement, c)
	}
	if len(g.placements) > 0 {
		return fmt.Errorf("%w: obstructions are fixed after the first placement", ErrInvalidPlacement)
	}
	g.cells[c.Row*g.cols+c.Col] = Obstructed
	return nil
}

// PlaceTower commits a tower of type t at c. Every in-bounds,
// non-obstructed cell within Chebyshev distance t.Range becomes
// Covered; cells already Covered stay Covered. Budget is not checked
// here; that is the optimizer's job.
func (g *Grid) PlaceTower(c Coord, t TowerType) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrInvalidPlacement, c)
	}
	if g.At(c) == Obstructed {
		return fmt.Errorf("%w: cell %v is obstructed", ErrInvalidPlacement, c)
	}
	rLo, rHi, cLo, cHi := g.clampSquare(c, t.Range)
	for r := rLo; r < rHi; r++ {
		for cc := cLo; cc < cHi; cc++ {
			i := r*g.cols + cc
			if g.cells[i] != Obstructed {
				g.cells[i] = Covered
			}
		}
	}
	g.placements = append(g.placements, Placement{At: c, Type: t})
	return nil
}

// Coverage returns, in row-major order, the members of uncovered that
// lie within Chebyshev distance r of c. Pure: the grid and the input
// set are left untouched. Uses the same bounds clamping as PlaceTower
// so pre-commit valuation and post-commit set shrinkage agree exactly.
func (g *Grid) Coverage(c Coord, r int, uncovered map[Coord]struct{}) []Coord {
	rLo, rHi, cLo, cHi := g.clampSquare(c, r)
	var covered []Coord
	for row := rLo; row < rHi; row++ {
		for col := cLo; col < cHi; col++ {
			cell := Coord{Row: row, Col: col}
			if _, ok := uncovered[cell]; ok {
				covered = append(covered, cell)
			}
		}
	}
	return covered
}

// clampSquare returns the half-open row/col ranges of the Chebyshev
// square of radius r around c, clipped to the grid.
func (g *Grid) clampSquare(c Coord, r int) (rLo, rHi, cLo, cHi int) {
	rLo, rHi = c.Row-r, c.Row+r+1
	cLo, cHi = c.Col-r, c.Col+r+1
	if rLo < 0 {
		rLo = 0
	}
	if rHi > g.rows {
		rHi = g.rows
	}
	if cLo < 0 {
		cLo = 0
	}
	if cHi > g.cols {
		cHi = g.cols
	}
	return rLo, rHi, cLo, cHi
}

// UncoveredSet returns the coordinates currently in state Free.
func (g *Grid) UncoveredSet() map[Coord]struct{} {
	set := make(map[Coord]struct{})
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Free {
				set[Coord{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	return set
}

// Placements returns the committed placements in commit order. The
// returned slice is shared; callers must treat it as read-only.
func (g *Grid) Placements() []Placement {
	return g.placements
}

// CoveragePercentage returns the fraction of non-obstructed cells that
// ended Covered. A grid with no non-obstructed cells reports 0.
func (g *Grid) CoveragePercentage() float64 {
	covered, open := 0, 0
	for _, s := range g.cells {
		switch s {
		case Covered:
			covered++
			open++
		case Free:
			open++
		}
	}
	if open == 0 {
		return 0
	}
	return float64(covered) / float64(open)
}

// Counts returns the number of cells per state.
func (g *Grid) Counts() (free, obstructed, covered int) {
	for _, s := range g.cells {
		switch s {
		case Free:
			free++
		case Obstructed:
			obstructed++
		case Covered:
			covered++
		}
	}
	return free, obstructed, covered
}
