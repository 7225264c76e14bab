// SPDX-License-Identifier: MIT

package seed_test

import (
	"testing"

	"github.com/katalvlaran/lvstream/seed"
)

// BenchmarkGenerateUniform builds a 64³ lattice. Complexity: O(nx·ny·nz).
func BenchmarkGenerateUniform(b *testing.B) {
	cfg := seed.Config{Strategy: seed.Uniform, Dimensions: [3]int{64, 64, 64}, Bounds: box(0, 1)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := seed.Generate(cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateRandom draws 100k points with the default seed.
func BenchmarkGenerateRandom(b *testing.B) {
	cfg := seed.Config{Strategy: seed.Random, Count: 100_000, Bounds: box(-1, 1)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := seed.Generate(cfg, nil); err != nil {
			b.Fatal(err)
		}
	}
}
