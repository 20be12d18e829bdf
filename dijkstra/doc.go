// Package dijkstra provides shortest-path search over a city graph with
// non-negative edge weights.
//
// Overview:
//
//   - FindPath answers a single start→goal query and stops as soon as the
//     goal is settled.
//   - ShortestPaths runs the same expansion to completion and returns the
//     distance and predecessor maps for every city.
//   - Both accept any Graph (HasCity, Neighbors, Cities); *core.Graph is the
//     usual implementation.
//
// Negative results:
//
//   - An unknown start or goal, or a goal in another component, yields
//     NoPath(): no cities and Distance == +Inf. This is not an error.
//   - start == goal for a known city yields the single-city path with
//     distance 0.
//
// Determinism:
//
//   - Frontier entries with equal distance pop in ascending city order, so
//     among several shortest paths the lexicographically earliest expansion wins.
//
// API reference:
//
//	func FindPath(g Graph, start, goal string, opts ...Option) (Path, error)
//	func ShortestPaths(g Graph, source string, opts ...Option) (map[string]float64, map[string]string, error)
package dijkstra
