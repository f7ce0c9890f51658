package kernel

import "github.com/ajroetker/vkernel/hwy/contrib/vec"

func init() {
	Register("blas", "explicit loops, BLAS dot-product reductions", computeBLAS)
}

// computeBLAS shares the elementwise loops of computeLoop and reduces the
// float vectors with a BLAS dot product against ones.
func computeBLAS(x []float64, flags []int, r *Result) {
	for i := range x {
		r.Output[i] = NegLog2(x[i])
		r.Intermediate[i] = ExpRatio(x[i])
	}
	r.Count = vec.Count(flags)
	r.Sum = vec.SumBLAS(r.Output)
	r.Sum2 = vec.SumBLAS(r.Intermediate)
}
