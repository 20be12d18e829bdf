package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/citygraph/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the road graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - core.ErrNilGraph : graph is nil.
//   - ErrEmptyGraph    : the graph has no cities.
//   - ErrDisconnected  : more than one city but not all of them connected.
//
// Steps:
//  1. Validate graph; a single city yields an empty tree.
//  2. Collect edges via graph.Edges(), which lists each road once in a stable order.
//  3. Stable-sort by ascending distance, so equal distances keep that order.
//  4. Initialize DSU maps parent[] and rank[] for each city.
//  5. For each edge (u,v), if find(u) != find(v), union and keep the edge.
//  6. Stop at |V|-1 edges; fewer than that means ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (Tree, error) {
	// 1. Validate.
	if graph == nil {
		return Tree{}, core.ErrNilGraph
	}
	cities := graph.Cities()
	switch len(cities) {
	case 0:
		return Tree{}, ErrEmptyGraph
	case 1:
		return Tree{Edges: []core.Edge{}}, nil
	}

	// 2-3. Parallel roads and all: the shorter one sorts first and wins.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Distance < edges[j].Distance
	})

	// 4. Disjoint-set over city IDs.
	parent := make(map[string]string, len(cities))
	rank := make(map[string]int, len(cities))
	for _, id := range cities {
		parent[id] = id
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union reports false when u and v were already joined.
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 5. Greedy pass.
	want := len(cities) - 1
	tree := Tree{Edges: make([]core.Edge, 0, want)}
	for _, e := range edges {
		if !union(e.City1, e.City2) {
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.Total += e.Distance
		if len(tree.Edges) == want {
			break
		}
	}

	// 6. Spanning check.
	if len(tree.Edges) < want {
		return Tree{}, ErrDisconnected
	}

	return tree, nil
}
