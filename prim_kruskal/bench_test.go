package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/citygraph/prim_kruskal"
)

// BenchmarkKruskal measures a 500-city network with 2000 extra roads.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000) // pre-build graph once
	b.ReportAllocs()
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same network grown from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "V0")
	}
}
