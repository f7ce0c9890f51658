//go:build !amd64

package vec

// SumBLAS computes the sum of v as the dot product of v with a ones vector.
// Off amd64 the dot product is a plain loop.
func SumBLAS(v []float64) float64 {
	y := ones(len(v))
	var sum float64
	for i, x := range v {
		sum += x * y[i]
	}
	return sum
}
