package core

import (
	"errors"
	"testing"
)

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{1, 1}, 1},
		{Coord{0, 0}, Coord{5, 5}, 5},
		{Coord{2, 7}, Coord{4, 3}, 4},
		{Coord{4, 3}, Coord{2, 7}, 4},
		{Coord{-1, 0}, Coord{1, 0}, 2},
	}

	for _, tt := range tests {
		got := Chebyshev(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Chebyshev(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		rows, cols int
		wantErr    bool
	}{
		{1, 1, false},
		{10, 10, false},
		{0, 5, true},
		{5, 0, true},
		{-1, 5, true},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.rows, tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewGrid(%d, %d) error = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
		}
	}
}

func TestNewGridFromLayout(t *testing.T) {
	g, err := NewGridFromLayout([][]bool{
		{false, true, false},
		{false, false, true},
	})
	if err != nil {
		t.Fatalf("NewGridFromLayout: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if got := g.At(Coord{0, 1}); got != Obstructed {
		t.Errorf("At(0,1) = %v, want Obstructed", got)
	}
	if got := g.At(Coord{0, 0}); got != Free {
		t.Errorf("At(0,0) = %v, want Free", got)
	}

	// Ragged layouts are rejected
	_, err = NewGridFromLayout([][]bool{{false, false}, {false}})
	if !errors.Is(err, ErrBadDimensions) {
		t.Errorf("ragged layout error = %v, want ErrBadDimensions", err)
	}
}

func TestPlaceTowerMarksChebyshevSquare(t *testing.T) {
	g, _ := NewGrid(5, 5)
	if err := g.PlaceTower(Coord{2, 2}, TowerType{Name: "small", Range: 1, Cost: 15}); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := Coord{r, c}
			want := Free
			if Chebyshev(cell, Coord{2, 2}) <= 1 {
				want = Covered
			}
			if got := g.At(cell); got != want {
				t.Errorf("At(%v) = %v, want %v", cell, got, want)
			}
		}
	}

	if n := len(g.Placements()); n != 1 {
		t.Errorf("Placements count = %d, want 1", n)
	}
}

func TestPlaceTowerClampsAtEdges(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if err := g.PlaceTower(Coord{0, 0}, TowerType{Name: "medium", Range: 2, Cost: 30}); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	// Radius 2 at the corner covers the whole 3x3 grid.
	_, _, covered := g.Counts()
	if covered != 9 {
		t.Errorf("covered = %d, want 9", covered)
	}
}

func TestPlaceTowerSkipsObstructed(t *testing.T) {
	g, _ := NewGridFromLayout([][]bool{
		{false, true, false},
		{false, false, false},
		{false, false, false},
	})
	if err := g.PlaceTower(Coord{1, 1}, TowerType{Name: "small", Range: 1, Cost: 15}); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if got := g.At(Coord{0, 1}); got != Obstructed {
		t.Errorf("obstructed cell transitioned to %v", got)
	}
	if got := g.At(Coord{0, 0}); got != Covered {
		t.Errorf("At(0,0) = %v, want Covered", got)
	}
}

func TestPlaceTowerRejections(t *testing.T) {
	g, _ := NewGridFromLayout([][]bool{
		{true, false},
		{false, false},
	})
	small := TowerType{Name: "small", Range: 1, Cost: 15}

	tests := []struct {
		name string
		at   Coord
	}{
		{"obstructed", Coord{0, 0}},
		{"negative row", Coord{-1, 0}},
		{"past last col", Coord{0, 2}},
	}

	for _, tt := range tests {
		if err := g.PlaceTower(tt.at, small); !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("%s: PlaceTower(%v) error = %v, want ErrInvalidPlacement", tt.name, tt.at, err)
		}
	}
	if n := len(g.Placements()); n != 0 {
		t.Errorf("failed placements were recorded: %d", n)
	}
}

func TestCoverageIsPureAndConsistentWithPlace(t *testing.T) {
	g, _ := NewGridFromLayout([][]bool{
		{false, false, false, false},
		{false, true, false, false},
		{false, false, false, false},
	})
	uncovered := g.UncoveredSet()
	sizeBefore := len(uncovered)

	first := g.Coverage(Coord{1, 0}, 1, uncovered)
	second := g.Coverage(Coord{1, 0}, 1, uncovered)
	if len(first) != len(second) {
		t.Fatalf("Coverage not idempotent: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Coverage order changed between identical calls")
		}
	}
	if len(uncovered) != sizeBefore {
		t.Errorf("Coverage mutated the candidate set")
	}

	// The obstructed cell is never a member of the uncovered set, so it
	// cannot appear in the coverage result.
	for _, c := range first {
		if g.At(c) == Obstructed {
			t.Errorf("Coverage returned obstructed cell %v", c)
		}
	}

	// Subtracting the pre-commit coverage must yield exactly the cells
	// still Free after committing at the same coordinate.
	if err := g.PlaceTower(Coord{1, 0}, TowerType{Name: "small", Range: 1, Cost: 15}); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	for _, c := range first {
		delete(uncovered, c)
	}
	after := g.UncoveredSet()
	if len(after) != len(uncovered) {
		t.Fatalf("set shrinkage drifted from grid marking: %d vs %d", len(after), len(uncovered))
	}
	for c := range after {
		if _, ok := uncovered[c]; !ok {
			t.Errorf("cell %v free on grid but absent from shrunk set", c)
		}
	}
}

func TestCoveragePercentage(t *testing.T) {
	g, _ := NewGridFromLayout([][]bool{
		{true, false},
		{false, false},
	})
	if pct := g.CoveragePercentage(); pct != 0 {
		t.Errorf("initial coverage = %v, want 0", pct)
	}
	if err := g.PlaceTower(Coord{1, 1}, TowerType{Name: "zero", Range: 0, Cost: 1}); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	// One of three open cells covered.
	if pct := g.CoveragePercentage(); pct < 0.333 || pct > 0.334 {
		t.Errorf("coverage = %v, want 1/3", pct)
	}

	// Fully obstructed grid reports 0 rather than dividing by zero.
	blocked, _ := NewGridFromLayout([][]bool{{true}})
	if pct := blocked.CoveragePercentage(); pct != 0 {
		t.Errorf("fully obstructed coverage = %v, want 0", pct)
	}
}

func TestObstructAfterPlacement(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if err := g.Obstruct(Coord{0, 0}); err != nil {
		t.Fatalf("Obstruct: %v", err)
	}
	if err := g.PlaceTower(Coord{2, 2}, TowerType{Name: "small", Range: 1, Cost: 15}); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if err := g.Obstruct(Coord{1, 0}); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("Obstruct after placement error = %v, want ErrInvalidPlacement", err)
	}
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr error
	}{
		{"default", DefaultCatalog(), nil},
		{"empty", Catalog{}, ErrEmptyCatalog},
		{"negative range", Catalog{{Name: "x", Range: -1, Cost: 1}}, ErrBadTowerType},
		{"zero cost", Catalog{{Name: "x", Range: 1, Cost: 0}}, ErrBadTowerType},
	}

	for _, tt := range tests {
		err := tt.catalog.Validate()
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestCatalogMinCost(t *testing.T) {
	if got := DefaultCatalog().MinCost(); got != 15 {
		t.Errorf("MinCost = %d, want 15", got)
	}
}
