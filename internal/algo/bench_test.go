package algo

import (
	"testing"

	"github.com/elektrokombinacija/towergrid/internal/core"
	"github.com/elektrokombinacija/towergrid/internal/gen"
)

func benchGrid(b *testing.B, rows, cols int) *core.Grid {
	b.Helper()
	g, err := gen.Generate(gen.Params{
		Rows: rows, Cols: cols, ObstructionPct: 30, Budget: 1, Seed: 42,
	})
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkOptimize20x20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := benchGrid(b, 20, 20)
		opt, err := NewOptimizer(g, core.DefaultCatalog(), 400)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		opt.Optimize()
	}
}

func BenchmarkShortestPath(b *testing.B) {
	g := benchGrid(b, 40, 40)
	opt, err := NewOptimizer(g, core.DefaultCatalog(), 2000)
	if err != nil {
		b.Fatal(err)
	}
	res := opt.Optimize()
	if len(res.Placements) < 2 {
		b.Skip("not enough towers placed")
	}
	pf := NewPathFinder(res.Placements)
	start := res.Placements[0].At
	end := res.Placements[len(res.Placements)-1].At

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pf.ShortestPath(start, end, 4)
	}
}
