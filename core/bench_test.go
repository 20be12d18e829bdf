// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/citygraph/core"
)

// BenchmarkAddEdge measures inserting a star of distinct roads.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("C%d", i), float64(i%100)+1)
	}
}

// BenchmarkAddEdge_MergeParallel cycles through 100 neighbors so most
// insertions hit the merge path.
func BenchmarkAddEdge_MergeParallel(b *testing.B) {
	g := core.NewGraph(core.WithMergeParallel())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("C%d", i%100), float64(i%7)+1)
	}
}

// BenchmarkNeighbors reads the adjacency copy of a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("Center", fmt.Sprintf("C%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("Center")
	}
}

// BenchmarkEdges enumerates a 1000-city ring, skipping every mirror entry.
func BenchmarkEdges(b *testing.B) {
	const n = 1000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", (i+1)%n), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
