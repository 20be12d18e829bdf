package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/citygraph/core"
)

// Prim computes the Minimum Spanning Tree (MST) by growing outwards from
// root using a min-heap of candidate roads.
//
// Error Conditions:
//   - core.ErrNilGraph : graph is nil.
//   - ErrEmptyGraph    : the graph has no cities.
//   - ErrEmptyRoot     : root is "".
//   - ErrCityNotFound  : root is not in the graph.
//   - ErrDisconnected  : some city cannot be reached from root.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its roads.
//  3. Pop the shortest road; skip it if its far end is visited, otherwise
//     keep it, mark the far end and push that city's roads.
//  4. Fewer than |V|-1 roads kept means ErrDisconnected.
//
// Equal distances pop in push order, so the result is deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (Tree, error) {
	// 1. Validate.
	if graph == nil {
		return Tree{}, core.ErrNilGraph
	}
	n := graph.CityCount()
	if n == 0 {
		return Tree{}, ErrEmptyGraph
	}
	if root == "" {
		return Tree{}, ErrEmptyRoot
	}
	if !graph.HasCity(root) {
		return Tree{}, ErrCityNotFound
	}

	visited := make(map[string]bool, n)
	tree := Tree{Edges: make([]core.Edge, 0, n-1)}
	pq := &edgePQ{}
	var seq int

	push := func(from string) {
		for _, nb := range graph.Neighbors(from) {
			if !visited[nb.City] {
				heap.Push(pq, &edgeItem{from: from, to: nb.City, dist: nb.Distance, seq: seq})
				seq++
			}
		}
	}

	// 2. Seed.
	visited[root] = true
	push(root)

	// 3. Main loop.
	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		it := heap.Pop(pq).(*edgeItem)
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		tree.Edges = append(tree.Edges, core.Edge{City1: it.from, City2: it.to, Distance: it.dist})
		tree.Total += it.dist
		push(it.to)
	}

	// 4. Spanning check.
	if len(tree.Edges) < n-1 {
		return Tree{}, ErrDisconnected
	}

	return tree, nil
}

// edgeItem is a candidate road leaving the tree.
type edgeItem struct {
	from, to string
	dist     float64
	seq      int // push order, breaks distance ties
}

// edgePQ implements heap.Interface ordered by (dist, seq).
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
