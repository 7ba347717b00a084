package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/towergrid/internal/vis/state"
)

// Timeline is a scrubber over the placement sequence.
type Timeline struct {
	state    *state.State
	dragging bool
}

// NewTimeline creates the timeline widget.
func NewTimeline(st *state.State) *Timeline {
	return &Timeline{state: st}
}

const (
	timelineHeight = 60
	timelineMargin = 20
)

// Layout renders the scrubber.
func (t *Timeline) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, timelineHeight)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	t.handlePointerEvents(gtx)

	trackY := timelineHeight / 2
	trackHeight := 6
	trackWidth := gtx.Constraints.Max.X - 2*timelineMargin

	trackRect := image.Rect(timelineMargin, trackY-trackHeight/2, timelineMargin+trackWidth, trackY+trackHeight/2)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(trackRect).Op())

	progress := t.state.Playback.Progress()
	fillWidth := int(float64(trackWidth) * progress)
	if fillWidth > 0 {
		fillRect := image.Rect(timelineMargin, trackY-trackHeight/2, timelineMargin+fillWidth, trackY+trackHeight/2)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 205, B: 90, A: 255}, clip.Rect(fillRect).Op())
	}

	playheadX := timelineMargin + fillWidth
	playheadSize := 12
	playheadRect := image.Rect(playheadX-playheadSize/2, trackY-playheadSize/2, playheadX+playheadSize/2, trackY+playheadSize/2)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, clip.Rect(playheadRect).Op())

	t.drawLabels(gtx, th)

	return layout.Dimensions{Size: image.Point{X: gtx.Constraints.Max.X, Y: timelineHeight}}
}

func (t *Timeline) drawLabels(gtx layout.Context, th *material.Theme) {
	current := material.Label(th, 12,
		fmt.Sprintf("placement %d / %d", t.state.Playback.Index, t.state.Playback.Max))
	current.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	current.Alignment = text.Start

	coverage := material.Label(th, 12,
		fmt.Sprintf("final coverage %.1f%%, budget left %d",
			t.state.Result.CoveragePct*100, t.state.Result.RemainingBudget))
	coverage.Color = color.NRGBA{R: 150, G: 180, B: 200, A: 255}
	coverage.Alignment = text.End

	layout.Inset{Top: unit.Dp(4), Left: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(current.Layout),
			layout.Rigid(coverage.Layout),
		)
	})
}

func (t *Timeline) handlePointerEvents(gtx layout.Context) {
	trackWidth := gtx.Constraints.Max.X - 2*timelineMargin

	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, timelineHeight)).Push(gtx.Ops)
	event.Op(gtx.Ops, t)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			t.dragging = true
			t.scrub(pe.Position.X, trackWidth)
		case pointer.Drag:
			if t.dragging {
				t.scrub(pe.Position.X, trackWidth)
			}
		case pointer.Release, pointer.Cancel:
			t.dragging = false
		}
	}
}

// scrub maps a screen x position on the track to a playback index.
func (t *Timeline) scrub(x float32, trackWidth int) {
	if trackWidth <= 0 || t.state.Playback.Max == 0 {
		return
	}
	frac := (float64(x) - timelineMargin) / float64(trackWidth)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	t.state.Playback.Playing = false
	t.state.Playback.SetIndex(int(frac*float64(t.state.Playback.Max) + 0.5))
}
