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

// Package hwy provides portable lane vectors with runtime dispatch.
//
// A Vec groups as many elements as fit in one register of the detected
// instruction set (16 bytes for SSE2/NEON/scalar, 32 for AVX2, 64 for
// AVX-512). Kernels written against Vec process an array one register-sized
// group at a time, which is the shape an auto-vectorizer produces for a
// SIMD loop. The lane grouping affects only the order of reductions, never
// elementwise results.
//
// Basic usage:
//
//	import "github.com/ajroetker/vkernel/hwy"
//
//	a := hwy.Load(x[i:])
//	b := hwy.Mul(a, hwy.Set(2.0))
//	hwy.Store(b, out[i:])
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Integers is a constraint for the integer types used as flags or counters.
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding one register-sized group of lanes.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of the vector.
// This is primarily for testing and lane-wise fallbacks.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
