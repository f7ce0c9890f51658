//go:build amd64

package vec

import "github.com/ziutek/blas"

// SumBLAS computes the sum of v as the dot product of v with a ones vector,
// using the BLAS Ddot kernel. The kernel unrolls its accumulation, so the
// rounding differs from SumSequential in the last bits.
func SumBLAS(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return blas.Ddot(len(v), v, 1, ones(len(v)), 1)
}
