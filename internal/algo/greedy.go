// Package algo implements towergrid's planning algorithms: the greedy
// budgeted coverage optimizer and breadth-first path search over the
// tower adjacency graph.
package algo

import (
	"github.com/elektrokombinacija/towergrid/internal/core"
)

// Optimizer selects tower placements greedily by marginal coverage per
// unit cost until the budget or the uncovered area runs out. It is a
// heuristic: the result is not guaranteed to be a maximum-coverage or
// minimum-cost solution.
type Optimizer struct {
	grid    *core.Grid
	catalog core.Catalog
	budget  int
	maxIter int // 0 = unlimited
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithMaxIterations caps the number of greedy iterations. The loop
// terminates on its own for every well-formed grid; the cap is a
// safety valve for pathological inputs, not required for correctness.
func WithMaxIterations(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// Result reports a completed optimization run. Budget exhaustion and
// full coverage are both ordinary terminations; Result distinguishes
// them only through the remaining numbers.
type Result struct {
	Placements      []core.Placement
	RemainingBudget int
	Spent           int
	CoveragePct     float64
	Iterations      int
}

// NewOptimizer validates the inputs and builds an optimizer over g.
func NewOptimizer(g *core.Grid, catalog core.Catalog, budget int, opts ...Option) (*Optimizer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if budget < 0 {
		return nil, ErrNegativeBudget
	}
	o := &Optimizer{grid: g, catalog: catalog, budget: budget}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// candidate is the best (cell, type) pair found in one scan.
type candidate struct {
	at    core.Coord
	tower core.TowerType
	cells []core.Coord // pre-commit coverage of the uncovered set
}

// Optimize runs the greedy loop to completion and returns the
// committed placements together with the remaining budget.
//
// Each iteration scans every affordable tower type in catalog order
// and every Free cell in row-major order, valuing a candidate as
// newly-covered-cell count divided by cost. Only strictly greater
// values displace the incumbent, so the first candidate encountered in
// scan order wins ties; given a fixed grid, catalog, and budget the
// placement sequence is fully deterministic.
func (o *Optimizer) Optimize() *Result {
	uncovered := o.grid.UncoveredSet()
	res := &Result{}

	for len(uncovered) > 0 && o.budget >= o.catalog.MinCost() {
		if o.maxIter > 0 && res.Iterations >= o.maxIter {
			break
		}

		best := o.scan(uncovered)
		if best == nil {
			break // no positive-value candidate left
		}

		// The scan only proposes Free cells, so the commit cannot fail.
		if err := o.grid.PlaceTower(best.at, best.tower); err != nil {
			break
		}
		o.budget -= best.tower.Cost
		res.Spent += best.tower.Cost
		for _, c := range best.cells {
			delete(uncovered, c)
		}
		res.Iterations++
	}

	res.Placements = o.grid.Placements()
	res.RemainingBudget = o.budget
	res.CoveragePct = o.grid.CoveragePercentage()
	return res
}

// scan finds the highest-value affordable candidate, or nil when no
// candidate covers anything. Iteration order is the tie-break rule:
// catalog declaration order outermost, then row-major over cells.
func (o *Optimizer) scan(uncovered map[core.Coord]struct{}) *candidate {
	var best *candidate
	bestValue := 0.0

	for _, tower := range o.catalog {
		if tower.Cost > o.budget {
			continue
		}
		for row := 0; row < o.grid.Rows(); row++ {
			for col := 0; col < o.grid.Cols(); col++ {
				cell := core.Coord{Row: row, Col: col}
				if o.grid.At(cell) != core.Free {
					continue
				}
				covered := o.grid.Coverage(cell, tower.Range, uncovered)
				value := float64(len(covered)) / float64(tower.Cost)
				if value > bestValue {
					bestValue = value
					best = &candidate{at: cell, tower: tower, cells: covered}
				}
			}
		}
	}
	return best
}

// RemainingBudget returns the budget not yet spent.
func (o *Optimizer) RemainingBudget() int {
	return o.budget
}
