// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kernel implements the fixed-width log/exp kernel and its reductions
// in several vectorization idioms.
//
// For an input vector x and a parallel 0/1 flag vector f, every variant
// computes
//
//	output[i]       = -ln(x[i]) * 2.0
//	intermediate[i] = exp(-x[i]) / (x[i] + 0.1)
//	count           = Σ f[i]
//	sum             = Σ output[i]
//	sum2            = Σ intermediate[i]
//
// Elementwise results are identical across variants. Reductions differ only
// in accumulation order, so sum and sum2 may differ in the last bits.
//
// Inputs x[i] <= 0 are not rejected: they propagate NaN or ±Inf following
// IEEE 754, the same as the scalar math functions.
package kernel

import (
	"fmt"
	"math"
)

// VLength is the width of the fixed test vectors.
const VLength = 8

// TestInput is the deterministic input vector.
var TestInput = [VLength]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

// TestFlags is the flag vector parallel to TestInput.
var TestFlags = [VLength]int{1, 0, 1, 1, 0, 0, 1, 1}

// Result holds the vectors and reductions computed by a kernel run.
type Result struct {
	Output       []float64
	Intermediate []float64
	Count        int
	Sum          float64
	Sum2         float64
}

// Len returns the vector length of the result.
func (r *Result) Len() int {
	return len(r.Output)
}

// resize makes the result vectors exactly n long, reusing capacity.
func (r *Result) resize(n int) {
	if cap(r.Output) < n {
		r.Output = make([]float64, n)
	}
	if cap(r.Intermediate) < n {
		r.Intermediate = make([]float64, n)
	}
	r.Output = r.Output[:n]
	r.Intermediate = r.Intermediate[:n]
}

// Input returns fresh copies of the fixed test vectors.
func Input() ([]float64, []int) {
	x := TestInput
	f := TestFlags
	return x[:], f[:]
}

// NegLog2 is the scalar form of the output expression.
func NegLog2(x float64) float64 {
	return -math.Log(x) * 2.0
}

// ExpRatio is the scalar form of the intermediate expression.
func ExpRatio(x float64) float64 {
	return math.Exp(-x) / (x + 0.1)
}

func checkLengths(x []float64, flags []int) {
	if len(x) != len(flags) {
		panic(fmt.Sprintf("kernel: input has %d elements but flags has %d", len(x), len(flags)))
	}
}
