package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/towergrid/internal/core"
)

func placementsAt(coords ...core.Coord) []core.Placement {
	small := core.TowerType{Name: "small", Range: 1, Cost: 15}
	ps := make([]core.Placement, len(coords))
	for i, c := range coords {
		ps[i] = core.Placement{At: c, Type: small}
	}
	return ps
}

func TestShortestPathDirectEdge(t *testing.T) {
	pf := NewPathFinder(placementsAt(
		core.Coord{Row: 0, Col: 0},
		core.Coord{Row: 1, Col: 1},
		core.Coord{Row: 5, Col: 5},
	))

	path, err := pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 1, Col: 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, path)
}

func TestShortestPathNotFound(t *testing.T) {
	pf := NewPathFinder(placementsAt(
		core.Coord{Row: 0, Col: 0},
		core.Coord{Row: 1, Col: 1},
		core.Coord{Row: 5, Col: 5},
	))

	// No edge bridges Chebyshev distance 4 at radius 2.
	_, err := pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 5, Col: 5}, 2)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestShortestPathMultiHop(t *testing.T) {
	// A chain (0,0)-(2,2)-(4,4)-(6,6) at radius 2, plus a stray tower.
	pf := NewPathFinder(placementsAt(
		core.Coord{Row: 0, Col: 0},
		core.Coord{Row: 2, Col: 2},
		core.Coord{Row: 4, Col: 4},
		core.Coord{Row: 6, Col: 6},
		core.Coord{Row: 0, Col: 9},
	))

	path, err := pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 6, Col: 6}, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{
		{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 4, Col: 4}, {Row: 6, Col: 6},
	}, path)

	// A larger radius shortcuts the chain.
	path, err = pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 6, Col: 6}, 4)
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, core.Coord{Row: 0, Col: 0}, path[0])
	assert.Equal(t, core.Coord{Row: 6, Col: 6}, path[len(path)-1])
}

func TestShortestPathSelf(t *testing.T) {
	at := core.Coord{Row: 3, Col: 4}
	pf := NewPathFinder(placementsAt(at, core.Coord{Row: 9, Col: 9}))

	for _, r := range []int{0, 1, 5} {
		path, err := pf.ShortestPath(at, at, r)
		require.NoError(t, err)
		assert.Equal(t, []core.Coord{at}, path)
	}
}

func TestShortestPathUnknownEndpoints(t *testing.T) {
	pf := NewPathFinder(placementsAt(core.Coord{Row: 0, Col: 0}))

	_, err := pf.ShortestPath(core.Coord{Row: 8, Col: 8}, core.Coord{Row: 0, Col: 0}, 2)
	assert.ErrorIs(t, err, ErrUnknownTower)

	_, err = pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 8, Col: 8}, 2)
	assert.ErrorIs(t, err, ErrUnknownTower)
}

func TestShortestPathPrefersFewestHops(t *testing.T) {
	// Two routes from (0,0) to (0,4) at radius 2: a two-hop route via
	// (0,2) and a three-hop route via (1,1) and (1,3). BFS must return
	// the two-hop route.
	pf := NewPathFinder(placementsAt(
		core.Coord{Row: 0, Col: 0},
		core.Coord{Row: 1, Col: 1},
		core.Coord{Row: 1, Col: 3},
		core.Coord{Row: 0, Col: 2},
		core.Coord{Row: 0, Col: 4},
	))

	path, err := pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 0, Col: 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4},
	}, path)
}

func TestShortestPathNegativeRadius(t *testing.T) {
	a, b := core.Coord{Row: 0, Col: 0}, core.Coord{Row: 0, Col: 1}
	pf := NewPathFinder(placementsAt(a, b))

	_, err := pf.ShortestPath(a, b, -1)
	assert.ErrorIs(t, err, ErrNoPath)

	// Self queries still succeed regardless of radius.
	path, err := pf.ShortestPath(a, a, -1)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{a}, path)
}

func TestShortestPathRepeatedQueriesAreIndependent(t *testing.T) {
	pf := NewPathFinder(placementsAt(
		core.Coord{Row: 0, Col: 0},
		core.Coord{Row: 2, Col: 2},
		core.Coord{Row: 4, Col: 4},
	))

	first, err := pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 4, Col: 4}, 2)
	require.NoError(t, err)
	second, err := pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 4, Col: 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A tighter radius on the same finder sees a disconnected graph.
	_, err = pf.ShortestPath(core.Coord{Row: 0, Col: 0}, core.Coord{Row: 4, Col: 4}, 1)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestPathFinderFromOptimizerResult(t *testing.T) {
	layout := make([][]bool, 9)
	for r := range layout {
		layout[r] = make([]bool, 9)
	}
	g, err := core.NewGridFromLayout(layout)
	require.NoError(t, err)
	opt, err := NewOptimizer(g, core.DefaultCatalog(), 90)
	require.NoError(t, err)
	res := opt.Optimize()
	require.NotEmpty(t, res.Placements)

	pf := NewPathFinder(res.Placements)
	start := res.Placements[0].At
	path, err := pf.ShortestPath(start, start, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{start}, path)
}
