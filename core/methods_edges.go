// File: methods_edges.go
// Role: Edge insertion and undirected enumeration.
// Determinism:
//   - Edges() walks cities in first-appearance order and neighbor entries in
//     insertion order, so the same sequence of insertions always yields the
//     same rows.
// Concurrency:
//   - Insertions under mu write lock; enumeration under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge connects cities a and b with the given distance in both directions.
//
// Rejected with an error wrapping ErrInvalidEdge when:
//   - a or b is empty (ErrEmptyCity),
//   - a == b (ErrSelfLoop),
//   - distance <= 0, NaN or infinite (ErrBadDistance).
//
// The graph is unchanged on error. Unknown endpoints are created.
// Repeated calls for the same pair append parallel entries unless the graph
// was built WithMergeParallel.
//
// Complexity: O(1) amortized, O(deg) when merging.
func (g *Graph) AddEdge(a, b string, distance float64) error {
	if err := validateEndpoints(a, b); err != nil {
		return err
	}
	if !isFinite(distance) || distance <= 0 {
		return fmt.Errorf("%w: %v must be positive", ErrBadDistance, distance)
	}
	g.insert(a, b, distance)

	return nil
}

// RestoreEdge behaves like AddEdge but also accepts a zero distance.
// Loaders use it because persisted rows only require non-negative weights.
func (g *Graph) RestoreEdge(a, b string, distance float64) error {
	if err := validateEndpoints(a, b); err != nil {
		return err
	}
	if !isFinite(distance) || distance < 0 {
		return fmt.Errorf("%w: %v must be non-negative", ErrBadDistance, distance)
	}
	g.insert(a, b, distance)

	return nil
}

// insert writes both directed entries under one lock.
func (g *Graph) insert(a, b string, distance float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureCity(a)
	g.ensureCity(b)

	if g.mergeParallel {
		if i := indexOf(g.adjacency[a], b); i >= 0 {
			if distance < g.adjacency[a][i].Distance {
				g.adjacency[a][i].Distance = distance
				j := indexOf(g.adjacency[b], a)
				g.adjacency[b][j].Distance = distance
			}
			return
		}
	}

	g.adjacency[a] = append(g.adjacency[a], Neighbor{City: b, Distance: distance})
	g.adjacency[b] = append(g.adjacency[b], Neighbor{City: a, Distance: distance})
	g.edgeCount++
}

// ensureCity registers id if absent. Caller must hold mu.
func (g *Graph) ensureCity(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// mirrorKey identifies a directed entry that still has to be skipped
// because its reverse was already emitted.
type mirrorKey struct {
	from, to string
	distance float64
}

// Edges returns one Edge per undirected connection.
//
// An entry u→v is emitted the first time it is met; the matching v→u entry
// (same distance) is skipped later. Each emitted edge cancels exactly one
// reverse entry, so parallel edges between the same pair come out as
// separate rows.
//
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	pending := make(map[mirrorKey]int, g.edgeCount)
	var (
		u string
		n Neighbor
	)
	for _, u = range g.order {
		for _, n = range g.adjacency[u] {
			self := mirrorKey{from: u, to: n.City, distance: n.Distance}
			if pending[self] > 0 {
				pending[self]--
				continue
			}
			out = append(out, Edge{City1: u, City2: n.City, Distance: n.Distance})
			pending[mirrorKey{from: n.City, to: u, distance: n.Distance}]++
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges, parallels included.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func validateEndpoints(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyCity
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func indexOf(list []Neighbor, city string) int {
	for i := range list {
		if list[i].City == city {
			return i
		}
	}

	return -1
}
