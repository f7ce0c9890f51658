package kernel

import "github.com/ajroetker/vkernel/hwy/contrib/vec"

func init() {
	Register("loop", "explicit per-index loops, sequential reductions", computeLoop)
}

// computeLoop is the SIMD-loop idiom: one plain loop per expression and one
// per reduction, each simple enough for the compiler to vectorize. The
// reductions accumulate strictly left to right.
func computeLoop(x []float64, flags []int, r *Result) {
	for i := range x {
		r.Output[i] = NegLog2(x[i])
	}
	for i := range x {
		r.Intermediate[i] = ExpRatio(x[i])
	}

	count := 0
	for _, f := range flags {
		count += f
	}
	r.Count = count
	r.Sum = vec.SumSequential(r.Output)
	r.Sum2 = vec.SumSequential(r.Intermediate)
}
