// Package state manages the visualization state: the scenario, the
// finished optimization result, and playback through the placement
// sequence.
package state

import (
	"github.com/elektrokombinacija/towergrid/internal/algo"
	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/gen"
)

// State holds everything the widgets render.
type State struct {
	Scenario *gen.Scenario
	Result   *algo.Result
	Path     []core.Coord // demo shortest path, empty when none exists
	Playback *PlaybackState

	// replay cache: grid after the first cachedK placements
	cachedK    int
	cachedGrid *core.Grid
}

// NewState runs playback setup for a finished scenario/result pair.
func NewState(s *gen.Scenario, res *algo.Result, path []core.Coord) *State {
	return &State{
		Scenario: s,
		Result:   res,
		Path:     path,
		Playback: NewPlaybackState(len(res.Placements)),
		cachedK:  -1,
	}
}

// GridAt returns the grid state after the first k placements have been
// committed. Rebuilt from the scenario obstruction list; the result is
// cached per k since playback asks every frame.
func (s *State) GridAt(k int) *core.Grid {
	if k == s.cachedK && s.cachedGrid != nil {
		return s.cachedGrid
	}
	g, err := s.Scenario.Grid()
	if err != nil {
		return nil
	}
	for i := 0; i < k && i < len(s.Result.Placements); i++ {
		p := s.Result.Placements[i]
		if err := g.PlaceTower(p.At, p.Type); err != nil {
			break
		}
	}
	s.cachedK = k
	s.cachedGrid = g
	return g
}

// CurrentGrid returns the grid at the playback position.
func (s *State) CurrentGrid() *core.Grid {
	return s.GridAt(s.Playback.Index)
}

// VisiblePlacements returns the placements committed so far in
// playback order.
func (s *State) VisiblePlacements() []core.Placement {
	k := s.Playback.Index
	if k > len(s.Result.Placements) {
		k = len(s.Result.Placements)
	}
	return s.Result.Placements[:k]
}

// PathVisible reports whether the demo path overlay should render:
// only once every placement is committed.
func (s *State) PathVisible() bool {
	return len(s.Path) > 0 && s.Playback.Index >= len(s.Result.Placements)
}
