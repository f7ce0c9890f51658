package kernel

import (
	"github.com/ajroetker/vkernel/hwy"
	"github.com/ajroetker/vkernel/hwy/contrib/algo"
	hmath "github.com/ajroetker/vkernel/hwy/contrib/math"
	"github.com/ajroetker/vkernel/hwy/contrib/vec"
)

func init() {
	Register("section", "whole-array lane expressions, lane-accumulated reductions", computeSection)
}

// negLog2Vec is -ln(v) * 2.0 over one lane group.
func negLog2Vec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Mul(hwy.Neg(hmath.Log(v)), hwy.Set(2.0))
}

// expRatioVec is exp(-v) / (v + 0.1) over one lane group.
func expRatioVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Div(hmath.Exp(hwy.Neg(v)), hwy.Add(v, hwy.Set(0.1)))
}

// computeSection is the array-section idiom: each expression is applied to
// the whole array at once and each reduction is a single whole-array call.
func computeSection(x []float64, flags []int, r *Result) {
	algo.Transform64(x, r.Output, negLog2Vec, NegLog2)
	algo.Transform64(x, r.Intermediate, expRatioVec, ExpRatio)

	r.Count = vec.Count(flags)
	r.Sum = vec.Sum(r.Output)
	r.Sum2 = vec.Sum(r.Intermediate)
}
