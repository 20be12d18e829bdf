package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge wraps every reason an edge insertion is rejected.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrEmptyCity indicates that one of the endpoints is empty.
	ErrEmptyCity = fmt.Errorf("%w: city ID is empty", ErrInvalidEdge)

	// ErrSelfLoop indicates that both endpoints are the same city.
	ErrSelfLoop = fmt.Errorf("%w: endpoints must be distinct cities", ErrInvalidEdge)

	// ErrBadDistance indicates a distance outside the accepted range.
	ErrBadDistance = fmt.Errorf("%w: bad distance", ErrInvalidEdge)

	// ErrNilGraph indicates that a nil *Graph was handed to a consumer.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Neighbor is one directed adjacency entry: the city reached and the
// distance of the connecting edge.
type Neighbor struct {
	City     string  `msgpack:"c" json:"city"`
	Distance float64 `msgpack:"d" json:"distance"`
}

// Edge is an undirected connection as emitted by Graph.Edges.
// City1 is the endpoint that was enumerated first.
type Edge struct {
	City1    string  `msgpack:"a" json:"city1"`
	City2    string  `msgpack:"b" json:"city2"`
	Distance float64 `msgpack:"d" json:"distance"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMergeParallel makes repeated insertion of an already connected pair
// keep the shorter distance instead of appending a parallel edge.
func WithMergeParallel() GraphOption {
	return func(g *Graph) { g.mergeParallel = true }
}

// Graph is the in-memory store of cities and distances.
//
// order records cities in the order they first appeared; it drives the
// deterministic enumeration used when persisting edges.
type Graph struct {
	mu sync.RWMutex // guards everything below

	mergeParallel bool

	order     []string              // first-appearance order
	adjacency map[string][]Neighbor // city → neighbor entries, insertion order
	edgeCount int                   // undirected edges, parallels included
}

// NewGraph creates an empty Graph with the given options.
// By default parallel edges are kept as separate entries.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Cities        int     `json:"cities"`
	Edges         int     `json:"edges"`
	TotalDistance float64 `json:"totalDistance"`
	MaxDegree     int     `json:"maxDegree"`
	MergeParallel bool    `json:"mergeParallel"`
}
