// Package scenario loads row-goal search setups from YAML files.
//
// A scenario names the grid size, the obstacle rows, the start cell and the
// pathfinder switches:
//
//	name: corridor
//	width: 5
//	height: 7
//	start: {x: 2, y: 6}
//	parent_update: expanding   # or "self"
//	strict_obstacles: false
//	rows:
//	  - "....."
//	  - ".###."
//	  - "....."
//	  - "....."
//	  - "....."
//	  - "....."
//	  - "....."
//
// Omitted width/height are taken from rows, then from the grid defaults.
// Omitted rows mean an open grid. An omitted start is the middle of the
// last row.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidScenario indicates a scenario that cannot drive a search.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Point is a cell coordinate in a scenario file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Scenario is one search setup.
type Scenario struct {
	Name            string   `yaml:"name,omitempty"`
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	Start           *Point   `yaml:"start,omitempty"`
	ParentUpdate    string   `yaml:"parent_update,omitempty"`
	StrictObstacles bool     `yaml:"strict_obstacles,omitempty"`
	Rows            []string `yaml:"rows,omitempty"`
}

// Default returns the open 5×7 scenario starting at (2,6).
func Default() *Scenario {
	s := &Scenario{Name: "default"}
	_ = s.normalize()

	return s
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates YAML scenario data. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// normalize fills defaults and validates dimensions, rows and start.
func (s *Scenario) normalize() error {
	for i, row := range s.Rows {
		s.Rows[i] = strings.TrimSpace(row)
	}
	if s.Height == 0 {
		s.Height = len(s.Rows)
	}
	if s.Width == 0 && len(s.Rows) > 0 {
		s.Width = len(s.Rows[0])
	}
	if s.Width == 0 {
		s.Width = grid.DefaultWidth
	}
	if s.Height == 0 {
		s.Height = grid.DefaultHeight
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidScenario, s.Width, s.Height)
	}
	if len(s.Rows) > 0 {
		if len(s.Rows) != s.Height {
			return fmt.Errorf("%w: %d rows for height %d", ErrInvalidScenario, len(s.Rows), s.Height)
		}
		for y, row := range s.Rows {
			if len(row) != s.Width {
				return fmt.Errorf("%w: row %d has %d cells for width %d", ErrInvalidScenario, y, len(row), s.Width)
			}
		}
	}
	if s.Start == nil {
		s.Start = &Point{X: s.Width / 2, Y: s.Height - 1}
	}
	if s.Start.X < 0 || s.Start.X >= s.Width || s.Start.Y < 0 || s.Start.Y >= s.Height {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrInvalidScenario, s.Start.X, s.Start.Y, s.Width, s.Height)
	}
	if _, err := astar.ParseParentUpdateMode(s.ParentUpdate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return nil
}

// Occupancy builds the obstacle grid. Without rows the grid is all open.
func (s *Scenario) Occupancy() (*grid.Occupancy, error) {
	if len(s.Rows) == 0 {
		return grid.New(s.Width, s.Height)
	}

	return grid.Parse(s.Rows)
}

// Options translates the scenario switches into pathfinder options.
func (s *Scenario) Options() ([]astar.Option, error) {
	mode, err := astar.ParseParentUpdateMode(s.ParentUpdate)
	if err != nil {
		return nil, err
	}
	opts := []astar.Option{
		astar.WithDimensions(s.Width, s.Height),
		astar.WithParentUpdate(mode),
	}
	if s.StrictObstacles {
		opts = append(opts, astar.WithStrictObstacles())
	}

	return opts, nil
}

// Pathfinder builds a pathfinder configured by the scenario with its grid
// installed. extra options are applied after the scenario's own.
func (s *Scenario) Pathfinder(extra ...astar.Option) (*astar.Pathfinder, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	p, err := astar.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	o, err := s.Occupancy()
	if err != nil {
		return nil, err
	}
	if err := p.SetOccupancyGrid(o); err != nil {
		return nil, err
	}

	return p, nil
}
