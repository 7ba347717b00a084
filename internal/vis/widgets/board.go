// Package widgets provides Gio UI widgets for the towergrid viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/vis/draw"
	"github.com/elektrokombinacija/towergrid/internal/vis/interact"
	"github.com/elektrokombinacija/towergrid/internal/vis/state"
)

// Board is the main grid visualization area.
type Board struct {
	state  *state.State
	camera *interact.Camera
	fitted bool
}

// NewBoard creates the board widget.
func NewBoard(st *state.State, camera *interact.Camera) *Board {
	return &Board{state: st, camera: camera}
}

// Layout renders the grid, towers, coverage, and the path overlay.
func (b *Board) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, draw.ColorGridLine)

	b.handlePointerEvents(gtx)

	grid := b.state.CurrentGrid()
	if grid == nil {
		return layout.Dimensions{Size: bounds}
	}

	if !b.fitted {
		b.camera.FitBounds(0, 0,
			float64(grid.Cols())*draw.CellSize, float64(grid.Rows())*draw.CellSize,
			float32(bounds.X), float32(bounds.Y), 40)
		b.fitted = true
	}

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			cell := core.Coord{Row: r, Col: c}
			draw.DrawCell(gtx, cell, b.camera, draw.CellColor(grid.At(cell)))
		}
	}

	placements := b.state.VisiblePlacements()
	for _, p := range placements {
		draw.DrawRangeOutline(gtx, p.At, p.Type.Range, b.camera, draw.ColorRange)
	}
	for _, p := range placements {
		draw.DrawTower(gtx, p.At, b.camera, draw.ColorTower)
	}

	// Highlight the most recent placement during playback.
	if n := b.state.Playback.Index; n > 0 && n <= len(b.state.Result.Placements) {
		latest := b.state.Result.Placements[n-1]
		draw.DrawRangeOutline(gtx, latest.At, latest.Type.Range, b.camera,
			color.NRGBA{R: 255, G: 255, B: 255, A: 160})
	}

	if b.state.PathVisible() {
		draw.DrawPath(gtx, b.state.Path, b.camera, draw.ColorPath, 4)
	}

	return layout.Dimensions{Size: bounds}
}

func (b *Board) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, b)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: b,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			b.camera.HandleEvent(gtx, pe)
		}
	}
}
