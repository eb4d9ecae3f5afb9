package sdtw_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/vishalbelsare/alphacsc/sdtw"
)

// benchCost builds an n×m squared cost matrix of two offset ramps — cheap
// to generate and representative of real alignment costs.
func benchCost(n, m int) *mat.Dense {
	cost := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			diff := float64(i) - float64(j) - 0.25
			cost.Set(i, j, diff*diff)
		}
	}

	return cost
}

// benchmarkCompute runs the forward pass on an n×m cost matrix with opts.
func benchmarkCompute(b *testing.B, n, m int, opts sdtw.Options) {
	engine, err := sdtw.New(benchCost(n, m), opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Compute()
	}
}

// benchmarkGrad runs the backward pass; the forward pass is done once
// during setup since Grad only needs the retained R matrix.
func benchmarkGrad(b *testing.B, n, m int, opts sdtw.Options) {
	engine, err := sdtw.New(benchCost(n, m), opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	engine.Compute()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Grad(); err != nil {
			b.Fatalf("Grad failed: %v", err)
		}
	}
}

// BenchmarkCompute_Small benchmarks the forward pass on 100×100 costs.
func BenchmarkCompute_Small(b *testing.B) {
	benchmarkCompute(b, 100, 100, sdtw.DefaultOptions())
}

// BenchmarkCompute_Medium benchmarks the forward pass on 500×500 costs.
func BenchmarkCompute_Medium(b *testing.B) {
	benchmarkCompute(b, 500, 500, sdtw.DefaultOptions())
}

// BenchmarkCompute_Banded benchmarks the forward pass under a ±10 band,
// where out-of-band cells skip the soft-min entirely.
func BenchmarkCompute_Banded(b *testing.B) {
	benchmarkCompute(b, 500, 500, sdtw.Options{Gamma: 1, Band: 10})
}

// BenchmarkGrad_Small benchmarks the backward pass on 100×100 costs.
func BenchmarkGrad_Small(b *testing.B) {
	benchmarkGrad(b, 100, 100, sdtw.DefaultOptions())
}

// BenchmarkGrad_Medium benchmarks the backward pass on 500×500 costs.
func BenchmarkGrad_Medium(b *testing.B) {
	benchmarkGrad(b, 500, 500, sdtw.DefaultOptions())
}

// BenchmarkGrad_Banded benchmarks the backward pass under a ±10 band.
func BenchmarkGrad_Banded(b *testing.B) {
	benchmarkGrad(b, 500, 500, sdtw.Options{Gamma: 1, Band: 10})
}
