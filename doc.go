// Package citygraph is a small engine for road maps: cities joined by
// undirected, weighted roads, with shortest-path queries and a tabular
// file format to keep the map between runs.
//
// 🚀 What is citygraph?
//
//	A thread-safe graph store plus a handful of thin front ends:
//		• Store: add roads, list cities and neighbors, enumerate edges once
//		• Search: Dijkstra shortest path with deterministic tie-breaks
//		• Reachability: hop-count BFS, connected components, spanning trees
//		• Persistence: CSV (city1,city2,distance_between) and compressed snapshots
//		• Front ends: an interactive shell and a session-based HTTP API
//
// Under the hood the code is organized as:
//
//	core/         - Graph, Neighbor, Edge and the validation errors
//	dijkstra/     - FindPath and ShortestPaths over core.Graph
//	bfs/          - breadth-first walk and Components
//	prim_kruskal/ - minimum spanning road network
//	graphio/      - Read/Write, Load/Save, CSV and snapshot codecs
//	internal/     - config, logging, repositories, sessions, server, shell
//	cmd/          - the citygraph binary
//
// Quick ASCII example:
//
//	Paris ──5── Lyon
//	    \        │
//	     10      3
//	       \     │
//	       Marseille
//
// Paris to Marseille is 8 via Lyon, not 10 direct.
//
//	go run ./cmd/citygraph -data cities_distances.csv
package citygraph
