// File: methods_cities.go
// Role: City-side read queries: HasCity, Cities, CityCount, Neighbors.
// Concurrency:
//   - All methods take the mu read lock and return copies.

package core

import "sort"

// HasCity reports whether id is a known city.
// Complexity: O(1)
func (g *Graph) HasCity(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Cities returns all known city IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Cities() []string {
	g.mu.RLock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// CityCount returns the number of known cities.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Neighbors returns a copy of the adjacency entries of id in insertion
// order, or nil when id is unknown. It never fails.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[id]
	if len(list) == 0 {
		return nil
	}
	out := make([]Neighbor, len(list))
	copy(out, list)

	return out
}

// AdjacencyList returns a snapshot of the whole structure, cities in
// first-appearance order. Adapters use it to render the graph.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() []CityEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]CityEntry, 0, len(g.order))
	for _, id := range g.order {
		list := make([]Neighbor, len(g.adjacency[id]))
		copy(list, g.adjacency[id])
		out = append(out, CityEntry{City: id, Neighbors: list})
	}

	return out
}

// CityEntry is one row of AdjacencyList.
type CityEntry struct {
	City      string     `json:"city"`
	Neighbors []Neighbor `json:"neighbors"`
}
