package reference

import (
	"math"

	"github.com/ajroetker/vkernel/kernel"
)

// Errors holds the relative errors of a result against the oracle.
type Errors struct {
	Output       float64 // max over all lanes
	Intermediate float64 // max over all lanes
	Sum          float64
	Sum2         float64
	CountOK      bool
}

// Max returns the largest relative error.
func (e Errors) Max() float64 {
	return max(e.Output, e.Intermediate, e.Sum, e.Sum2)
}

// Within reports whether the count is exact and every relative error is
// below tolerance.
func (e Errors) Within(tolerance float64) bool {
	return e.CountOK && e.Max() < tolerance
}

// RelErr returns |got-want| / max(|want|, 1e-15). Matching NaNs and equal
// infinities count as exact; any other non-finite pair is +Inf.
func RelErr(got, want float64) float64 {
	switch {
	case math.IsNaN(got) || math.IsNaN(want):
		if math.IsNaN(got) && math.IsNaN(want) {
			return 0
		}
		return math.Inf(1)
	case math.IsInf(got, 0) || math.IsInf(want, 0):
		if got == want {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(got-want) / math.Max(math.Abs(want), 1e-15)
}

// Measure compares got with the oracle's result for the same inputs.
// It panics if the vector lengths differ.
func Measure(got, want kernel.Result) Errors {
	if got.Len() != want.Len() || len(got.Intermediate) != len(want.Intermediate) {
		panic("reference: results have different lengths")
	}
	e := Errors{
		Sum:     RelErr(got.Sum, want.Sum),
		Sum2:    RelErr(got.Sum2, want.Sum2),
		CountOK: got.Count == want.Count,
	}
	for i := range got.Output {
		e.Output = max(e.Output, RelErr(got.Output[i], want.Output[i]))
		e.Intermediate = max(e.Intermediate, RelErr(got.Intermediate[i], want.Intermediate[i]))
	}
	return e
}
