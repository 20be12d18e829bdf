// File: api.go
// Role: Whole-graph helpers: Clone, Stats, MergeParallel.
// Concurrency:
//   - Read lock on the source graph only; the clone is private until returned.

package core

// Clone returns a deep copy of the Graph: options, city order and every
// adjacency entry. The clone shares nothing with g.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		mergeParallel: g.mergeParallel,
		order:         make([]string, len(g.order)),
		adjacency:     make(map[string][]Neighbor, len(g.adjacency)),
		edgeCount:     g.edgeCount,
	}
	copy(clone.order, g.order)
	for id, list := range g.adjacency {
		if list == nil {
			clone.adjacency[id] = nil
			continue
		}
		cp := make([]Neighbor, len(list))
		copy(cp, list)
		clone.adjacency[id] = cp
	}

	return clone
}

// MergeParallel reports whether the graph was built WithMergeParallel.
func (g *Graph) MergeParallel() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mergeParallel
}

// Stats produces a snapshot of counts for diagnostics and adapters.
// TotalDistance sums each undirected edge once.
// Complexity: O(V + E)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Cities:        len(g.order),
		Edges:         g.edgeCount,
		MergeParallel: g.mergeParallel,
	}
	var sum float64
	for _, list := range g.adjacency {
		if len(list) > st.MaxDegree {
			st.MaxDegree = len(list)
		}
		for _, n := range list {
			sum += n.Distance
		}
	}
	st.TotalDistance = sum / 2

	return st
}
