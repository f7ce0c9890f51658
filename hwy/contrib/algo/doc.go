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

// Package algo provides whole-slice algorithms built on hwy lane vectors.
//
// # Transform API
//
// Transform64 applies one expression to an entire slice, the Go rendition of
// array-section notation (out[0:N] = f(in[0:N])):
//   - Transform64(input, output []float64, vecFunc VecFunc64, scalarFunc ScalarFunc64)
//
// # Example Usage
//
//	import "github.com/ajroetker/vkernel/hwy/contrib/algo"
//
//	func Square(input []float64) []float64 {
//	    output := make([]float64, len(input))
//	    algo.Transform64(input, output,
//	        func(v hwy.Vec[float64]) hwy.Vec[float64] { return hwy.Mul(v, v) },
//	        func(x float64) float64 { return x * x },
//	    )
//	    return output
//	}
package algo
