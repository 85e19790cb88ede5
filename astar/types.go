package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/isopath/grid"
)

// Sentinel errors returned by New and Search.
var (
	// ErrNilGrid indicates New was called with a nil grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilTopology indicates New was called with a nil topology.
	ErrNilTopology = errors.New("astar: topology is nil")

	// ErrInvalidCoordinate indicates a start or goal cell outside the grid.
	ErrInvalidCoordinate = errors.New("astar: coordinate outside grid")

	// ErrGridResized indicates the grid no longer has the dimensions the engine
	// was built for.
	ErrGridResized = errors.New("astar: grid dimensions changed since construction")

	// ErrExpansionLimit indicates the search hit MaxExpansions before finishing.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadTurnPenalty indicates a negative or NaN turn penalty.
	ErrBadTurnPenalty = errors.New("astar: TurnPenalty must be a non-negative number")

	// ErrBadMaxExpansions indicates a negative expansion limit.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// TurnPenalty is the default extra cost of a move that changes direction.
const TurnPenalty = 0.05

// TerminationPolicy selects when a search is considered successful.
type TerminationPolicy int

const (
	// TerminateOnDiscovery stops once the goal is in the frontier after an
	// expansion. This is the default.
	TerminateOnDiscovery TerminationPolicy = iota

	// TerminateOnExpansion stops when the goal itself is expanded.
	TerminateOnExpansion
)

// String returns the policy name.
func (t TerminationPolicy) String() string {
	if t == TerminateOnExpansion {
		return "expansion"
	}

	return "discovery"
}

// Options configures an Engine.
type Options struct {
	TurnPenalty   float64           // Extra cost of a direction change
	MaxExpansions int               // Expansion cap per search; 0 means unlimited
	Termination   TerminationPolicy // When the goal counts as reached
	OnExpand      func(grid.Cell)   // Optional hook called for every expanded cell
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithTurnPenalty overrides the extra cost of a direction change.
// Panics with ErrBadTurnPenalty if p is negative or NaN.
func WithTurnPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 || math.IsNaN(p) {
			panic(ErrBadTurnPenalty.Error())
		}
		o.TurnPenalty = p
	}
}

// WithMaxExpansions caps the number of expansions per search. A search that
// reaches the cap returns ErrExpansionLimit. Zero disables the cap.
// Panics with ErrBadMaxExpansions if n is negative.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithTermination selects the stopping rule.
func WithTermination(t TerminationPolicy) Option {
	return func(o *Options) {
		o.Termination = t
	}
}

// WithOnExpand registers a hook called with each expanded cell, in expansion order.
func WithOnExpand(fn func(grid.Cell)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns the defaults:
//   - TurnPenalty:   0.05
//   - MaxExpansions: 0 (unlimited)
//   - Termination:   TerminateOnDiscovery
//   - OnExpand:      nil
func DefaultOptions() Options {
	return Options{
		TurnPenalty:   TurnPenalty,
		MaxExpansions: 0,
		Termination:   TerminateOnDiscovery,
	}
}

// Result is the outcome of one Search.
type Result struct {
	Path     []grid.Cell // Steps after start, ending at goal; empty if not found or start == goal
	Cost     float64     // Accumulated cost of Path including turn penalties
	Expanded int         // Number of cells expanded
	Found    bool        // Whether goal was reached (true when start == goal)
}
