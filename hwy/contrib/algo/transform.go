package algo

import "github.com/ajroetker/vkernel/hwy"

// Function types for generic Transform operations.
type (
	// VecFunc64 is a lane operation over one register-sized group.
	// It must return a vector with the same number of lanes it was given.
	VecFunc64 func(hwy.Vec[float64]) hwy.Vec[float64]

	// ScalarFunc64 is a scalar operation on a single float64.
	ScalarFunc64 func(float64) float64
)

// Transform64 applies an operation to each element of input, storing results
// in output. Full lane groups and the tail both go through vec; when vec is
// nil, scalar is applied element by element instead.
//
// Only min(len(input), len(output)) elements are processed.
//
// Example usage:
//
//	Transform64(input, output,
//	    func(v hwy.Vec[float64]) hwy.Vec[float64] { return hwy.Mul(v, v) },
//	    func(x float64) float64 { return x * x },
//	)
func Transform64(input, output []float64, vec VecFunc64, scalar ScalarFunc64) {
	n := min(len(input), len(output))
	if vec == nil {
		for i := 0; i < n; i++ {
			output[i] = scalar(input[i])
		}
		return
	}

	hwy.ProcessWithTail[float64](n,
		func(offset int) {
			hwy.Store(vec(hwy.Load(input[offset:])), output[offset:])
		},
		func(offset, count int) {
			hwy.Store(vec(hwy.LoadN(input[offset:], count)), output[offset:])
		},
	)
}
