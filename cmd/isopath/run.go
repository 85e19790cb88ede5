package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/isopath/astar"
	"github.com/katalvlaran/isopath/grid"
	"github.com/katalvlaran/isopath/topology"
)

var (
	errBadCell  = errors.New("cell must be written as x,y")
	errHalfPair = errors.New("--from and --to must be given together")
	errNoRoutes = errors.New("map file has no routes and no --from/--to was given")
	errNegative = errors.New("--speed and --max-expansions must be non-negative")
)

// Overlay runes drawn over the grid.
const (
	markStart   = 'S'
	markGoal    = 'G'
	markWalked  = '*'
	markPlanned = 'o'
)

type routeConfig struct {
	mapPath       string
	from, to      string
	speed         int
	strict        bool
	maxExpansions int
}

type request struct {
	start, goal grid.Cell
}

// scenario is a loaded map file ready to search.
type scenario struct {
	mf   *grid.MapFile
	grid *grid.Grid
	topo topology.Topology
}

func loadScenario(path string) (*scenario, error) {
	mf, err := grid.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := mf.Grid()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	kind, err := topology.ParseKind(mf.Topology)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	topo, err := topology.New(kind)
	if err != nil {
		return nil, err
	}

	return &scenario{mf: mf, grid: g, topo: topo}, nil
}

// requests returns the explicit --from/--to pair if given, else the file's routes.
func (s *scenario) requests(from, to string) ([]request, error) {
	if from != "" || to != "" {
		if from == "" || to == "" {
			return nil, errHalfPair
		}
		start, err := parseCell(from)
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		goal, err := parseCell(to)
		if err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
		return []request{{start: start, goal: goal}}, nil
	}

	if len(s.mf.Routes) == 0 {
		return nil, errNoRoutes
	}
	reqs := make([]request, 0, len(s.mf.Routes))
	for _, rt := range s.mf.Routes {
		start, goal, err := rt.Endpoints()
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, request{start: start, goal: goal})
	}

	return reqs, nil
}

func runRoute(w io.Writer, cfg routeConfig) error {
	if cfg.speed < 0 || cfg.maxExpansions < 0 {
		return errNegative
	}
	s, err := loadScenario(cfg.mapPath)
	if err != nil {
		return err
	}
	reqs, err := s.requests(cfg.from, cfg.to)
	if err != nil {
		return err
	}

	opts := []astar.Option{astar.WithMaxExpansions(cfg.maxExpansions)}
	if cfg.strict {
		opts = append(opts, astar.WithTermination(astar.TerminateOnExpansion))
	}
	e, err := astar.New(s.grid, s.topo, opts...)
	if err != nil {
		return err
	}

	for i, req := range reqs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		res, err := e.Search(req.start, req.goal)
		if err != nil {
			return fmt.Errorf("route %v -> %v: %w", req.start, req.goal, err)
		}
		printResult(w, s.grid, req, res, cfg.speed)
	}

	return nil
}

func printResult(w io.Writer, g *grid.Grid, req request, res astar.Result, speed int) {
	if !res.Found {
		fmt.Fprintf(w, "route %v -> %v: no path, expanded %d\n", req.start, req.goal, res.Expanded)
		return
	}
	walked := walkLength(len(res.Path), speed)
	fmt.Fprintf(w, "route %v -> %v: %d steps, cost %.2f, expanded %d\n",
		req.start, req.goal, len(res.Path), res.Cost, res.Expanded)
	fmt.Fprintf(w, "walk %v\n", res.Path[:walked])
	fmt.Fprintln(w, overlay(g, req, res.Path, walked))
}

// walkLength is how many cells a mover with the given speed covers this turn.
func walkLength(n, speed int) int {
	if speed <= 0 {
		return n
	}

	return min(n, speed)
}

// overlay draws start, goal and the path over the grid's ASCII rows. The first
// walked cells of the path are marked as walked, the rest as planned.
func overlay(g *grid.Grid, req request, path []grid.Cell, walked int) string {
	rows := strings.Split(g.String(), "\n")
	canvas := make([][]byte, len(rows))
	for y, row := range rows {
		canvas[y] = []byte(row)
	}
	for i, c := range path {
		mark := byte(markPlanned)
		if i < walked {
			mark = markWalked
		}
		canvas[c.Y][c.X] = mark
	}
	canvas[req.start.Y][req.start.X] = markStart
	canvas[req.goal.Y][req.goal.X] = markGoal

	var b strings.Builder
	for y, row := range canvas {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}

	return b.String()
}

// runCheck validates a map file: rows, topology name, grid dimensions and
// that every route endpoint lies on the grid. It then reports the number of
// walkable regions and every route whose goal cannot be reached.
func runCheck(w io.Writer, path string) error {
	s, err := loadScenario(path)
	if err != nil {
		return err
	}
	if err := s.topo.Validate(s.grid.Width(), s.grid.Height()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	reqs := make([]request, len(s.mf.Routes))
	for i, rt := range s.mf.Routes {
		start, goal, err := rt.Endpoints()
		if err != nil {
			return fmt.Errorf("%s: route %d: %w", path, i, err)
		}
		for _, c := range []grid.Cell{start, goal} {
			if !s.grid.InBounds(c) {
				return fmt.Errorf("%s: route %d: %w: %v", path, i, grid.ErrOutOfBounds, c)
			}
		}
		reqs[i] = request{start: start, goal: goal}
	}

	_, regions := topology.Components(s.grid, s.topo)
	fmt.Fprintf(w, "%s: ok, %v %dx%d, %d routes, %d regions\n",
		path, s.topo.Kind(), s.grid.Width(), s.grid.Height(), len(reqs), regions)
	for i, req := range reqs {
		dist := topology.Distances(s.grid, s.topo, req.start, req.goal)
		if dist[s.grid.Index(req.goal)] == topology.Unreached {
			fmt.Fprintf(w, "  route %d %v -> %v: unreachable\n", i, req.start, req.goal)
		}
	}

	return nil
}

// parseCell reads "x,y" (spaces allowed around either number).
func parseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return grid.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}

	return grid.C(x, y), nil
}
