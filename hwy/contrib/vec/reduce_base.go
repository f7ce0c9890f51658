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

package vec

import "github.com/ajroetker/vkernel/hwy"

// Sum computes the sum of all elements in a slice using a lane accumulator.
//
// Returns 0 if the slice is empty.
//
// Lane j accumulates v[j], v[j+lanes], v[j+2*lanes], ...; the lanes are then
// reduced in order and the tail is added last. This is the accumulation order
// an auto-vectorized reduction loop uses, so for floats the result may differ
// from SumSequential in the last bits, and it depends on hwy.CurrentWidth.
//
// Example:
//
//	data := []float64{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func Sum[T hwy.Lanes](v []T) T {
	if len(v) == 0 {
		return 0
	}

	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		sum = hwy.Add(sum, hwy.Load(v[i:]))
	}

	// Reduce vector sum to scalar
	result := hwy.ReduceSum(sum)

	// Handle tail elements with scalar code
	for ; i < len(v); i++ {
		result += v[i]
	}

	return result
}

// SumSequential computes the sum of all elements strictly left to right.
//
// The accumulation order is fixed, so the result is bitwise reproducible on
// every platform and dispatch level.
func SumSequential[T hwy.Lanes](v []T) T {
	var sum T
	for _, x := range v {
		sum += x
	}
	return sum
}

// Count returns the sum of an integer flag vector as an int.
// Integer addition is exact, so the lane accumulator order does not matter.
func Count[T hwy.Integers](flags []T) int {
	return int(Sum(flags))
}
