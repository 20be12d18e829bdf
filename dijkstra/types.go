// Package dijkstra defines core types and configuration options
// for shortest-path search over a city graph.
//
// Options:
//
//	– MaxDistance:      cap on distances to explore; cities beyond it are unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrCityNotFound    if ShortestPaths is asked for an unknown source.
//	– ErrNegativeWeight  if a negative edge weight is encountered.
//	– ErrOptionViolation if an option was given an out-of-range value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/citygraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrCityNotFound indicates that the source city does not exist.
	ErrCityNotFound = errors.New("dijkstra: source city not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was met during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Graph is the read-only view the search needs. *core.Graph satisfies it.
type Graph interface {
	HasCity(id string) bool
	Neighbors(id string) []core.Neighbor
	Cities() []string
}

// Path is the outcome of FindPath.
//
// A path that was not found has no cities and Distance == +Inf; that is a
// normal negative answer, not an error.
type Path struct {
	Cities   []string `json:"path"`
	Distance float64  `json:"distance"`
}

// NoPath is the value returned when start and goal are not connected.
func NoPath() Path { return Path{Distance: math.Inf(1)} }

// Found reports whether the path connects start and goal.
func (p Path) Found() bool { return len(p.Cities) > 0 }

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	if !p.Found() {
		return "no path"
	}

	return strings.Join(p.Cities, " -> ")
}

// Options configures the search.
//
// MaxDistance      – cities whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// A negative or NaN value is recorded and surfaced as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative, got %v", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable.
// A non-positive or NaN value is recorded and surfaced as ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive, got %v", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
