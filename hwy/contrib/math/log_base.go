package math

import (
	stdmath "math"

	"github.com/ajroetker/vkernel/hwy"
)

// Log computes ln(x) (natural logarithm) for each element in the vector.
//
// Algorithm: Applies stdmath.Log to each lane independently.
//
// Special cases:
//   - Log(x) = NaN if x < 0
//   - Log(0) = -Inf
//   - Log(+Inf) = +Inf
//   - Log(NaN) = NaN
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return mapLanes(v, stdmath.Log)
}
