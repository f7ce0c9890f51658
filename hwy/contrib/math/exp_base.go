package math

import (
	stdmath "math"

	"github.com/ajroetker/vkernel/hwy"
)

// Exp computes e^x for each element in the vector.
//
// Algorithm: Applies stdmath.Exp to each lane independently, so every lane
// is bitwise equal to the scalar result regardless of the dispatch width.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return mapLanes(v, stdmath.Exp)
}

// mapLanes applies fn to every lane of v in float64 precision.
func mapLanes[T hwy.Floats](v hwy.Vec[T], fn func(float64) float64) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = T(fn(float64(x)))
	}
	return hwy.LoadN(result, len(result))
}
