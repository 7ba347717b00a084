// Command towergrid runs a tower coverage planning experiment: it
// generates (or loads) an obstructed grid, places towers greedily
// under the budget, and reports coverage and connectivity.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/elektrokombinacija/towergrid/internal/algo"
	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/gen"
	"github.com/elektrokombinacija/towergrid/internal/report"
)

func main() {
	var (
		rows     = flag.Int("rows", 10, "grid rows")
		cols     = flag.Int("cols", 10, "grid columns")
		obstruct = flag.Float64("obstruct", 30, "obstructed cells, percent of grid")
		budget   = flag.Int("budget", 150, "total placement budget")
		seed     = flag.Int64("seed", 1, "obstruction layout seed")
		radius   = flag.Int("radius", 2, "connectivity radius for the path demo")
		scenario = flag.String("scenario", "", "load scenario JSON instead of generating")
		htmlOut  = flag.String("html", "", "write an HTML coverage report to this file")
	)
	flag.Parse()

	grid, catalog, err := buildGrid(*scenario, gen.Params{
		Rows:           *rows,
		Cols:           *cols,
		ObstructionPct: *obstruct,
		Budget:         *budget,
		Seed:           *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== towergrid: budgeted coverage planning ===")
	free, obstructed, _ := grid.Counts()
	fmt.Printf("Grid: %dx%d, %d free cells, %d obstructed, budget %d\n",
		grid.Rows(), grid.Cols(), free, obstructed, *budget)

	opt, err := algo.NewOptimizer(grid, catalog, *budget)
	if err != nil {
		log.Fatal(err)
	}
	res := opt.Optimize()

	fmt.Printf("\nPlacements (%d):\n", len(res.Placements))
	for i, p := range res.Placements {
		fmt.Printf("  %2d. %-6s at %v  (range %d, cost %d)\n",
			i+1, p.Type.Name, p.At, p.Type.Range, p.Type.Cost)
	}
	fmt.Printf("\nCoverage: %.1f%%  Spent: %d  Remaining budget: %d\n",
		res.CoveragePct*100, res.Spent, res.RemainingBudget)

	fmt.Println("\nGrid (. free, # obstructed, + covered, T tower):")
	printGrid(grid, res.Placements)

	runPathDemo(res, *radius)

	if *htmlOut != "" {
		if err := report.WriteFile(*htmlOut, grid, res); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nHTML report written to %s\n", *htmlOut)
	}
}

// buildGrid loads a scenario file or generates a fresh layout.
func buildGrid(scenarioPath string, p gen.Params) (*core.Grid, core.Catalog, error) {
	if scenarioPath == "" {
		g, err := gen.Generate(p)
		return g, core.DefaultCatalog(), err
	}
	s, err := gen.Load(scenarioPath)
	if err != nil {
		return nil, nil, err
	}
	g, err := s.Grid()
	if err != nil {
		return nil, nil, err
	}
	catalog := s.Catalog
	if len(catalog) == 0 {
		catalog = core.DefaultCatalog()
	}
	return g, catalog, nil
}

// printGrid dumps the cell states as ASCII, one row per line.
func printGrid(g *core.Grid, placements []core.Placement) {
	towers := make(map[core.Coord]bool, len(placements))
	for _, p := range placements {
		towers[p.At] = true
	}
	for r := 0; r < g.Rows(); r++ {
		line := make([]byte, 0, g.Cols()*2)
		for c := 0; c < g.Cols(); c++ {
			cell := core.Coord{Row: r, Col: c}
			ch := byte('.')
			switch {
			case towers[cell]:
				ch = 'T'
			case g.At(cell) == core.Obstructed:
				ch = '#'
			case g.At(cell) == core.Covered:
				ch = '+'
			}
			line = append(line, ch, ' ')
		}
		fmt.Printf("  %s\n", line)
	}
}

// runPathDemo queries a shortest path between the first and the last
// committed tower.
func runPathDemo(res *algo.Result, radius int) {
	if len(res.Placements) < 2 {
		return
	}
	pf := algo.NewPathFinder(res.Placements)
	start := res.Placements[0].At
	end := res.Placements[len(res.Placements)-1].At

	fmt.Printf("\nShortest path %v -> %v at radius %d: ", start, end, radius)
	path, err := pf.ShortestPath(start, end, radius)
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}
	for i, c := range path {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(c)
	}
	fmt.Printf("  (%d hops)\n", len(path)-1)
}
