package vector_test

import (
	"testing"

	"github.com/katalvlaran/lattice/vector"
)

// benchVectors builds two length-n vectors with predictable contents.
func benchVectors(n int) (vector.Vector, vector.Vector) {
	a := make(vector.Vector, n)
	b := make(vector.Vector, n)
	for i := 0; i < n; i++ {
		a[i] = float64(i)
		b[i] = float64(n - i)
	}

	return a, b
}

// BenchmarkDot_256 measures the dot kernel on 256 components.
func BenchmarkDot_256(b *testing.B) {
	x, y := benchVectors(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vector.Dot(x, y); err != nil {
			b.Fatalf("Dot: %v", err)
		}
	}
}

// BenchmarkRemoveProjection_256 measures projection removal on 256 components.
func BenchmarkRemoveProjection_256(b *testing.B) {
	x, y := benchVectors(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vector.RemoveProjection(x, y, 1e-15); err != nil {
			b.Fatalf("RemoveProjection: %v", err)
		}
	}
}
