// Package bfs provides breadth-first search over a city graph, ignoring
// distances: it answers "which cities can be reached, in how many hops".
//
// What
//
//   - BFS(g, start, opts...) visits cities in non-decreasing hop count and
//     returns a Result with Order, Depth and Parent.
//   - WithMaxDepth stops the walk after d hops; WithContext makes it
//     cancellable between dequeues.
//   - Components groups all cities into connected components, which
//     adapters use to explain why a shortest-path query found nothing.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, and Components lists each
//	component sorted with components ordered by their smallest city.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
