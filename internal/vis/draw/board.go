// Package draw provides rendering primitives for the grid view.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/vis/interact"
)

// CellSize is the world-space edge length of one grid cell.
const CellSize = 40.0

// Cell state and overlay colors.
var (
	ColorFree       = color.NRGBA{R: 52, G: 56, B: 62, A: 255}
	ColorObstructed = color.NRGBA{R: 170, G: 60, B: 60, A: 255}
	ColorCovered    = color.NRGBA{R: 60, G: 140, B: 90, A: 255}
	ColorTower      = color.NRGBA{R: 255, G: 205, B: 90, A: 255}
	ColorRange      = color.NRGBA{R: 255, G: 205, B: 90, A: 70}
	ColorPath       = color.NRGBA{R: 110, G: 180, B: 255, A: 230}
	ColorGridLine   = color.NRGBA{R: 30, G: 33, B: 38, A: 255}
)

// CellColor maps a cell state to its fill color.
func CellColor(s core.CellState) color.NRGBA {
	switch s {
	case core.Obstructed:
		return ColorObstructed
	case core.Covered:
		return ColorCovered
	default:
		return ColorFree
	}
}

// cellOrigin returns the world-space top-left corner of cell c.
func cellOrigin(c core.Coord) (x, y float64) {
	return float64(c.Col) * CellSize, float64(c.Row) * CellSize
}

// CellCenter returns the world-space center of cell c.
func CellCenter(c core.Coord) (x, y float64) {
	x, y = cellOrigin(c)
	return x + CellSize/2, y + CellSize/2
}

// DrawCell fills one grid cell, inset by a hairline so the grid lines
// show through.
func DrawCell(gtx layout.Context, c core.Coord, camera *interact.Camera, col color.NRGBA) {
	wx, wy := cellOrigin(c)
	x1, y1 := camera.WorldToScreen(wx, wy)
	x2, y2 := camera.WorldToScreen(wx+CellSize, wy+CellSize)
	rect := image.Rect(int(x1)+1, int(y1)+1, int(x2)-1, int(y2)-1)
	if rect.Empty() {
		return
	}
	paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
}

// DrawTower draws a tower marker as a filled circle at the cell
// center.
func DrawTower(gtx layout.Context, at core.Coord, camera *interact.Camera, col color.NRGBA) {
	wx, wy := CellCenter(at)
	cx, cy := camera.WorldToScreen(wx, wy)
	r := float32(CellSize*0.3) * camera.Zoom

	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+r, cy))
	const segments = 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		x := cx + r*float32(math.Cos(angle))
		y := cy + r*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// DrawRangeOutline draws the square Chebyshev coverage boundary of a
// tower as four thin edge strips.
func DrawRangeOutline(gtx layout.Context, at core.Coord, rng int, camera *interact.Camera, col color.NRGBA) {
	wx, wy := cellOrigin(core.Coord{Row: at.Row - rng, Col: at.Col - rng})
	side := float64(2*rng+1) * CellSize
	x1, y1 := camera.WorldToScreen(wx, wy)
	x2, y2 := camera.WorldToScreen(wx+side, wy+side)

	const w = 2
	edges := []image.Rectangle{
		image.Rect(int(x1), int(y1), int(x2), int(y1)+w),
		image.Rect(int(x1), int(y2)-w, int(x2), int(y2)),
		image.Rect(int(x1), int(y1), int(x1)+w, int(y2)),
		image.Rect(int(x2)-w, int(y1), int(x2), int(y2)),
	}
	for _, rect := range edges {
		if !rect.Empty() {
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}
}

// DrawPath draws a tower-to-tower path as line segments between cell
// centers.
func DrawPath(gtx layout.Context, path []core.Coord, camera *interact.Camera, col color.NRGBA, width float32) {
	if len(path) < 2 {
		return
	}
	w := width * camera.Zoom
	for i := 0; i < len(path)-1; i++ {
		wx1, wy1 := CellCenter(path[i])
		wx2, wy2 := CellCenter(path[i+1])
		x1, y1 := camera.WorldToScreen(wx1, wy1)
		x2, y2 := camera.WorldToScreen(wx2, wy2)
		drawSegment(gtx, x1, y1, x2, y2, w, col)
	}
}

// drawSegment fills a quad along the line from (x1,y1) to (x2,y2).
func drawSegment(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
