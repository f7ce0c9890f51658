package vec

// Float64 constants
const (
	vecOne_f64 float64 = 1.0
)

// onesCache holds a read-only ones vector shared by SumBLAS calls.
// Sized for the fixed kernel width; longer requests allocate.
var onesCache = ones64(64)

func ones64(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = vecOne_f64
	}
	return y
}

// ones returns a slice of n ones. Callers must not modify it.
func ones(n int) []float64 {
	if n <= len(onesCache) {
		return onesCache[:n]
	}
	return ones64(n)
}
