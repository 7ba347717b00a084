// Package vis implements a Gio-based viewer for towergrid runs: it
// replays the greedy placement sequence on the obstructed grid and
// overlays the demo shortest path between the first and last tower.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/towergrid/internal/algo"
	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/gen"
	"github.com/elektrokombinacija/towergrid/internal/vis/interact"
	"github.com/elektrokombinacija/towergrid/internal/vis/state"
	"github.com/elektrokombinacija/towergrid/internal/vis/widgets"
)

// App is the viewer application.
type App struct {
	state    *state.State
	theme    *material.Theme
	board    *widgets.Board
	timeline *widgets.Timeline
	camera   *interact.Camera
}

// NewApp plans the given scenario and builds the viewer around the
// result.
func NewApp(scenario *gen.Scenario, radius int) (*App, error) {
	grid, err := scenario.Grid()
	if err != nil {
		return nil, err
	}
	catalog := scenario.Catalog
	if len(catalog) == 0 {
		catalog = core.DefaultCatalog()
	}
	opt, err := algo.NewOptimizer(grid, catalog, scenario.Params.Budget)
	if err != nil {
		return nil, err
	}
	res := opt.Optimize()

	var path []core.Coord
	if len(res.Placements) >= 2 {
		pf := algo.NewPathFinder(res.Placements)
		first := res.Placements[0].At
		last := res.Placements[len(res.Placements)-1].At
		if p, err := pf.ShortestPath(first, last, radius); err == nil {
			path = p
		}
	}

	st := state.NewState(scenario, res, path)
	camera := interact.NewCamera()
	return &App{
		state:    st,
		theme:    material.NewTheme(),
		board:    widgets.NewBoard(st, camera),
		timeline: widgets.NewTimeline(st),
		camera:   camera,
	}, nil
}

// DefaultScenario builds the stock 10x10 demo layout.
func DefaultScenario() (*gen.Scenario, error) {
	return gen.NewScenario(gen.Params{
		Rows:           10,
		Cols:           10,
		ObstructionPct: 30,
		Budget:         150,
		Seed:           1,
	}, core.DefaultCatalog())
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.state.Playback.Playing {
				a.state.Playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.state.Playback.TogglePlay()
	case key.NameLeftArrow:
		a.state.Playback.StepBack()
	case key.NameRightArrow:
		a.state.Playback.StepForward()
	case key.NameHome:
		a.state.Playback.Reset()
	case "R":
		a.camera.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.board.Layout(gtx, a.theme)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.timeline.Layout(gtx, a.theme)
		}),
	)
}
