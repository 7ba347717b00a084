package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/elektrokombinacija/towergrid/internal/core"
)

// Scenario is the on-disk form of a generated grid: the parameters
// that produced it plus the explicit obstruction coordinates, so a
// saved file replays identically even if the generator changes.
type Scenario struct {
	Name         string       `json:"name"`
	Params       Params       `json:"params"`
	Obstructions []core.Coord `json:"obstructions"`
	Catalog      core.Catalog `json:"catalog"`
	Generated    string       `json:"generated"`
}

// NewScenario generates a grid from p and captures it as a Scenario.
func NewScenario(p Params, catalog core.Catalog) (*Scenario, error) {
	g, err := Generate(p)
	if err != nil {
		return nil, err
	}
	s := &Scenario{
		Name:      fmt.Sprintf("towergrid_%dx%d_%d", p.Rows, p.Cols, p.Seed),
		Params:    p,
		Catalog:   catalog,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := core.Coord{Row: r, Col: c}
			if g.At(cell) == core.Obstructed {
				s.Obstructions = append(s.Obstructions, cell)
			}
		}
	}
	return s, nil
}

// Grid rebuilds the grid described by the scenario.
func (s *Scenario) Grid() (*core.Grid, error) {
	if err := s.Params.Validate(); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(s.Params.Rows, s.Params.Cols)
	if err != nil {
		return nil, err
	}
	for _, c := range s.Obstructions {
		if err := g.Obstruct(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Save writes the scenario as indented JSON.
func (s *Scenario) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a scenario file written by Save.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("gen: parsing scenario %s: %w", path, err)
	}
	return &s, nil
}
