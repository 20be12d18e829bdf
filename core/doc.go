// Package core defines the central Graph type holding cities and their
// symmetric, weighted road connections, plus the sentinel errors and
// options used to build one.
//
// A Graph is an adjacency map: city ID → ordered list of Neighbor entries.
// Every edge is stored twice (once per direction) and both entries are
// written under a single write lock, so readers never observe half an edge.
//
// Inserting edges:
//
//   - AddEdge validates user input: distinct, non-empty cities and a
//     finite distance > 0.
//   - RestoreEdge is the loader's variant; it also accepts distance 0,
//     which persisted files may contain.
//   - Repeated insertion of the same pair appends a parallel edge unless
//     the graph was built WithMergeParallel, in which case the shorter
//     distance wins.
//
// Reading:
//
//   - Cities() is sorted; AdjacencyList() follows first-appearance order.
//   - Neighbors(id) returns a copy in insertion order, nil for an unknown city.
//   - Edges() emits each undirected connection once; the reverse entry is
//     skipped, parallel edges stay separate rows.
//   - Clone() deep-copies cities, adjacency and options.
//
// Errors:
//
//	ErrInvalidEdge  - umbrella for every rejected insertion.
//	ErrEmptyCity    - one endpoint is the empty string.
//	ErrSelfLoop     - both endpoints name the same city.
//	ErrBadDistance  - distance is NaN, infinite, negative, or zero where a
//	                  positive value is required.
//	ErrNilGraph     - a nil *Graph was passed to a loader or repository.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Writers take the write lock,
//	readers share the read lock, and every returned slice is a fresh copy.
package core
