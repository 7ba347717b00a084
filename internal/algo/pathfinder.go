package algo

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/elektrokombinacija/towergrid/internal/core"
)

// towerEntry wraps a placement for R-tree storage. Each tower occupies
// a unit cell rect at (col, row).
type towerEntry struct {
	idx  int // index into the placement list
	at   core.Coord
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *towerEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// PathFinder answers shortest-path queries between placed towers over
// an implicit range-based adjacency graph. It holds a read-only view
// of the placement list and may be queried any number of times; the
// adjacency lists are derived fresh for every query since the
// connectivity radius is a query parameter.
type PathFinder struct {
	placements []core.Placement
	byCoord    map[core.Coord]int
	tree       *rtreego.Rtree
}

// NewPathFinder indexes the committed placements. The slice is taken
// as read-only input; it is typically Result.Placements.
func NewPathFinder(placements []core.Placement) *PathFinder {
	pf := &PathFinder{
		placements: placements,
		byCoord:    make(map[core.Coord]int, len(placements)),
		tree:       rtreego.NewTree(2, 25, 50),
	}
	for i, p := range placements {
		if _, ok := pf.byCoord[p.At]; !ok {
			pf.byCoord[p.At] = i
		}
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(p.At.Col), float64(p.At.Row)},
			[]float64{1, 1},
		)
		if err != nil {
			continue
		}
		pf.tree.Insert(&towerEntry{idx: i, at: p.At, bbox: bbox})
	}
	return pf
}

// ShortestPath returns the fewest-hop tower sequence from start to
// end, where consecutive towers are within Chebyshev distance r of
// each other. A query with start == end returns [start] without
// traversal. ErrUnknownTower flags an endpoint that is not a committed
// placement; ErrNoPath means the towers are not connected at radius r.
func (pf *PathFinder) ShortestPath(start, end core.Coord, r int) ([]core.Coord, error) {
	startIdx, ok := pf.byCoord[start]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTower, start)
	}
	endIdx, ok := pf.byCoord[end]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTower, end)
	}
	if startIdx == endIdx {
		return []core.Coord{start}, nil
	}

	adj := pf.adjacency(r)

	// BFS over tower indices: FIFO queue of (node, path so far),
	// neighbors marked visited on enqueue. The first dequeue of the
	// destination carries a fewest-hop path.
	type queueItem struct {
		idx  int
		path []int
	}
	visited := make(map[int]bool, len(pf.placements))
	queue := []queueItem{{idx: startIdx, path: []int{startIdx}}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.idx == endIdx {
			return pf.coords(item.path), nil
		}
		for _, nbr := range adj[item.idx] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			next := make([]int, len(item.path), len(item.path)+1)
			copy(next, item.path)
			queue = append(queue, queueItem{idx: nbr, path: append(next, nbr)})
		}
	}

	return nil, fmt.Errorf("%w: %v -> %v at radius %d", ErrNoPath, start, end, r)
}

// adjacency builds per-query neighbor lists: an undirected edge joins
// two towers iff their Chebyshev distance is at most r. Candidates
// come from an R-tree box search; the box over-approximates by one
// cell at the rim, so every hit is re-checked exactly. Neighbor lists
// are sorted by placement index, which is the order the pairwise
// i<j enumeration would have produced.
func (pf *PathFinder) adjacency(r int) [][]int {
	adj := make([][]int, len(pf.placements))
	if r < 0 {
		return adj
	}
	side := float64(2*r + 1)
	for i, p := range pf.placements {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(p.At.Col - r), float64(p.At.Row - r)},
			[]float64{side, side},
		)
		if err != nil {
			continue
		}
		for _, hit := range pf.tree.SearchIntersect(bbox) {
			entry := hit.(*towerEntry)
			if entry.idx == i {
				continue
			}
			if core.Chebyshev(p.At, entry.at) <= r {
				adj[i] = append(adj[i], entry.idx)
			}
		}
		sort.Ints(adj[i])
	}
	return adj
}

// coords maps placement indices back to coordinates.
func (pf *PathFinder) coords(idxs []int) []core.Coord {
	path := make([]core.Coord, len(idxs))
	for i, idx := range idxs {
		path[i] = pf.placements[idx].At
	}
	return path
}
