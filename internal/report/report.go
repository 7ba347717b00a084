// Package report renders an HTML view of a finished optimization run:
// a heatmap of the final cell states with the placed towers marked,
// plus budget and coverage figures. It is a read-only consumer of the
// grid; nothing here feeds back into planning.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/elektrokombinacija/towergrid/internal/algo"
	"github.com/elektrokombinacija/towergrid/internal/core"
)

// Heatmap cell values. Towers get their own bucket so they stand out
// from the area they cover.
const (
	cellFree       = 0
	cellCovered    = 1
	cellObstructed = 2
	cellTower      = 3
)

// State colors: free grey, covered green, obstructed red, tower gold.
var stateColors = []string{"#d9d9d9", "#35b779", "#c23531", "#ffd666"}

// RenderHTML writes a standalone HTML page for the run to w.
func RenderHTML(w io.Writer, g *core.Grid, res *algo.Result) error {
	towers := make(map[core.Coord]bool, len(res.Placements))
	for _, p := range res.Placements {
		towers[p.At] = true
	}

	data := make([]opts.HeatMapData, 0, g.Rows()*g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := core.Coord{Row: r, Col: c}
			v := cellFree
			switch {
			case towers[cell]:
				v = cellTower
			case g.At(cell) == core.Obstructed:
				v = cellObstructed
			case g.At(cell) == core.Covered:
				v = cellCovered
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, r, v}})
		}
	}

	cols := make([]string, g.Cols())
	for c := range cols {
		cols[c] = fmt.Sprintf("%d", c)
	}
	rows := make([]string, g.Rows())
	for r := range rows {
		rows[r] = fmt.Sprintf("%d", r)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Tower Coverage Report",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Tower Coverage",
			Subtitle: fmt.Sprintf("towers=%d coverage=%.1f%% spent=%d remaining=%d",
				len(res.Placements), res.CoveragePct*100, res.Spent, res.RemainingBudget),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Name:      "col",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Name:      "row",
			Data:      rows,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(false),
			Min:        cellFree,
			Max:        cellTower,
			InRange:    &opts.VisualMapInRange{Color: stateColors},
		}),
	)
	hm.SetXAxis(cols).AddSeries("grid", data)

	return hm.Render(w)
}

// WriteFile renders the report to path.
func WriteFile(path string, g *core.Grid, res *algo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return RenderHTML(f, g, res)
}
