package clique_test

import (
	"testing"

	"github.com/katalvlaran/eqcover/clique"
)

// BenchmarkBuild_K12 measures expansion of a single 12-clique (4095 entries).
func BenchmarkBuild_K12(b *testing.B) {
	g := completeGraph(b, 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Build(g); err != nil {
			b.Fatal(err)
		}
	}
}
