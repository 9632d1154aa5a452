// Package sparse_test provides benchmarks for the hot blockmodel-matrix
// operations, using deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockpart/sparse"
)

// benchSizes are the block counts to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkI64 int64
	sinkV   []int64
)

// fillRand populates roughly 8 entries per row with a fixed seed.
func fillRand(b *testing.B, m *sparse.Matrix, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < m.Rows(); r++ {
		for k := 0; k < 8; k++ {
			if err := m.Add(r, rng.Intn(m.Cols()), int64(1+rng.Intn(16))); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("B=%d", n), func(b *testing.B) {
			m, err := sparse.New(n, n)
			if err != nil {
				b.Fatal(err)
			}
			rng := rand.New(rand.NewSource(1337))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = m.Add(rng.Intn(n), rng.Intn(n), 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUpdateEdgeCounts(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("B=%d", n), func(b *testing.B) {
			m, err := sparse.New(n, n)
			if err != nil {
				b.Fatal(err)
			}
			fillRand(b, m, 1337)
			curRow, _ := m.GetRow(0)
			propRow, _ := m.GetRow(1)
			curCol, _ := m.GetCol(0)
			propCol, _ := m.GetCol(1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = m.UpdateEdgeCounts(0, 1, curRow, propRow, curCol, propCol); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSumAxis(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("B=%d", n), func(b *testing.B) {
			m, err := sparse.New(n, n)
			if err != nil {
				b.Fatal(err)
			}
			fillRand(b, m, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = m.SumAxis(sparse.ByRow)
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("B=%d", n), func(b *testing.B) {
			m, err := sparse.New(n, n)
			if err != nil {
				b.Fatal(err)
			}
			fillRand(b, m, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI64 = m.Sum()
			}
		})
	}
}
