// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/citygraph/core"
)

// ErrEmptyGraph indicates that the graph holds no cities, so there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no cities")

// ErrEmptyRoot indicates that no start city was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root city")

// ErrCityNotFound indicates that the Prim root is not in the graph.
var ErrCityNotFound = errors.New("prim_kruskal: root city not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all cities cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for a Method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Tree is a minimum spanning tree: the chosen roads and their summed distance.
type Tree struct {
	Edges []core.Edge `json:"edges"`
	Total float64     `json:"total"`
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting city to use.
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start city for Prim; when empty Prim starts at the
//	                lexicographically smallest city. Ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting city for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm chosen by opts.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, Root), Root defaulting to the first city.
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := cfg.Root
		if root == "" && graph != nil {
			if cities := graph.Cities(); len(cities) > 0 {
				root = cities[0]
			}
		}
		return Prim(graph, root)
	default:
		return Tree{}, ErrUnknownMethod
	}
}
