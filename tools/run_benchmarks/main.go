// Package main provides the benchmark runner for the towergrid
// optimizer. Runs every scenario in a directory and aggregates
// runtime and coverage metrics per grid configuration.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/elektrokombinacija/towergrid/internal/algo"
	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/gen"
)

// BenchmarkResult stores the outcome of a single scenario run.
type BenchmarkResult struct {
	Timestamp   string  `json:"timestamp"`
	GoVersion   string  `json:"go_version"`
	OS          string  `json:"os"`
	Arch        string  `json:"arch"`
	Scenario    string  `json:"scenario"`
	GridSize    string  `json:"grid_size"`
	Budget      int     `json:"budget"`
	RuntimeMs   float64 `json:"runtime_ms"`
	Towers      int     `json:"towers"`
	CoveragePct float64 `json:"coverage_pct"`
	Spent       int     `json:"spent"`
	Remaining   int     `json:"remaining"`
}

// configMetrics aggregates results per grid configuration.
type configMetrics struct {
	runtimes  []float64
	coverages []float64
	towers    []float64
}

func main() {
	var (
		dir     = flag.String("scenarios", "scenarios", "scenario directory")
		csvOut  = flag.String("csv", "benchmark_results.csv", "CSV output path")
		jsonOut = flag.String("json", "benchmark_results.json", "JSON output path")
	)
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.json"))
	if err != nil {
		log.Fatal(err)
	}
	if len(paths) == 0 {
		log.Fatalf("no scenarios found in %s (run tools/gen_scenarios first)", *dir)
	}
	sort.Strings(paths)

	var results []BenchmarkResult
	byConfig := make(map[string]*configMetrics)

	for _, path := range paths {
		res, err := runScenario(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		results = append(results, *res)

		m := byConfig[res.GridSize]
		if m == nil {
			m = &configMetrics{}
			byConfig[res.GridSize] = m
		}
		m.runtimes = append(m.runtimes, res.RuntimeMs)
		m.coverages = append(m.coverages, res.CoveragePct)
		m.towers = append(m.towers, float64(res.Towers))

		fmt.Printf("%-40s %8.2fms  %2d towers  %5.1f%% coverage\n",
			res.Scenario, res.RuntimeMs, res.Towers, res.CoveragePct*100)
	}

	printSummary(byConfig)

	if err := writeCSV(*csvOut, results); err != nil {
		log.Fatal(err)
	}
	if err := writeJSON(*jsonOut, results); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nwrote %s and %s\n", *csvOut, *jsonOut)
}

func runScenario(path string) (*BenchmarkResult, error) {
	s, err := gen.Load(path)
	if err != nil {
		return nil, err
	}
	grid, err := s.Grid()
	if err != nil {
		return nil, err
	}
	catalog := s.Catalog
	if len(catalog) == 0 {
		catalog = core.DefaultCatalog()
	}
	opt, err := algo.NewOptimizer(grid, catalog, s.Params.Budget)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := opt.Optimize()
	elapsed := time.Since(start)

	return &BenchmarkResult{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		Scenario:    s.Name,
		GridSize:    fmt.Sprintf("%dx%d", s.Params.Rows, s.Params.Cols),
		Budget:      s.Params.Budget,
		RuntimeMs:   float64(elapsed.Microseconds()) / 1000.0,
		Towers:      len(res.Placements),
		CoveragePct: res.CoveragePct,
		Spent:       res.Spent,
		Remaining:   res.RemainingBudget,
	}, nil
}

// printSummary reports mean and standard deviation per configuration.
func printSummary(byConfig map[string]*configMetrics) {
	sizes := make([]string, 0, len(byConfig))
	for size := range byConfig {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)

	fmt.Println("\n=== Summary (mean ± stddev) ===")
	for _, size := range sizes {
		m := byConfig[size]
		meanRt, stdRt := stat.MeanStdDev(m.runtimes, nil)
		meanCov, stdCov := stat.MeanStdDev(m.coverages, nil)
		meanTw := stat.Mean(m.towers, nil)
		fmt.Printf("%-8s runtime %8.2f ± %6.2f ms   coverage %5.1f ± %4.1f %%   towers %4.1f\n",
			size, meanRt, stdRt, meanCov*100, stdCov*100, meanTw)
	}
}

func writeCSV(path string, results []BenchmarkResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"timestamp", "scenario", "grid_size", "budget",
		"runtime_ms", "towers", "coverage_pct", "spent", "remaining"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Timestamp, r.Scenario, r.GridSize,
			fmt.Sprintf("%d", r.Budget),
			fmt.Sprintf("%.3f", r.RuntimeMs),
			fmt.Sprintf("%d", r.Towers),
			fmt.Sprintf("%.4f", r.CoveragePct),
			fmt.Sprintf("%d", r.Spent),
			fmt.Sprintf("%d", r.Remaining),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, results []BenchmarkResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
