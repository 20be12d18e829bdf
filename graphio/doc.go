// Package graphio loads and persists a core.Graph as an undirected edge
// table.
//
// The tabular format is comma-separated with the header
//
//	city1,city2,distance_between
//
// and one row per undirected edge. Distances are non-negative decimals.
// Files ending in .cgs hold the same edge list as a zstd-compressed msgpack
// snapshot.
//
// Errors:
//
//	ErrMalformedInput - matched by *MalformedInputError; the load is aborted.
//	ErrIO             - the source or destination could not be read or written.
//
// A missing source is not an error: Load returns an empty graph.
package graphio
