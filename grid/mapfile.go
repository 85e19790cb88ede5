package grid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MapFile is a YAML scenario: a topology name, ASCII rows and routes to plan.
//
//	topology: isometric
//	rows:
//	  - "..#."
//	  - ".T.."
//	routes:
//	  - {from: [0, 0], to: [3, 1]}
type MapFile struct {
	Topology string   `yaml:"topology"`
	Rows     []string `yaml:"rows"`
	Routes   []Route  `yaml:"routes"`
}

// Route is a single start/goal request inside a MapFile.
type Route struct {
	From []int `yaml:"from"`
	To   []int `yaml:"to"`
}

// Endpoints returns the route's start and goal cells.
func (r Route) Endpoints() (start, goal Cell, err error) {
	if len(r.From) != 2 || len(r.To) != 2 {
		return Cell{}, Cell{}, fmt.Errorf("%w: from=%v to=%v", ErrBadRoute, r.From, r.To)
	}

	return C(r.From[0], r.From[1]), C(r.To[0], r.To[1]), nil
}

// Load reads and decodes the map file at path.
func Load(path string) (*MapFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mf, nil
}

// Decode reads one YAML map file from r and validates its rows and routes.
// Unknown keys are rejected.
func Decode(r io.Reader) (*MapFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var mf MapFile
	if err := dec.Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("mapfile: %w", ErrEmptyGrid)
		}
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	if _, err := mf.Grid(); err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	for i, rt := range mf.Routes {
		if _, _, err := rt.Endpoints(); err != nil {
			return nil, fmt.Errorf("mapfile: route %d: %w", i, err)
		}
	}

	return &mf, nil
}

// Grid parses the file's rows into a fresh Grid.
func (mf *MapFile) Grid() (*Grid, error) {
	return Parse(mf.Rows)
}
