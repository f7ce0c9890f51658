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

// Package bench runs a kernel variant repeatedly and measures the loop.
//
// Only the loop itself is timed; formatting the results and reading the
// input arrays happen outside the measured region.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajroetker/vkernel/kernel"
)

// DefaultIterations is the iteration count of the timed mode.
const DefaultIterations = 100

// ErrIterations is returned when the iteration count is below one.
var ErrIterations = errors.New("iteration count must be at least 1")

// Timing describes one measured run.
type Timing struct {
	Iterations int
	Elapsed    time.Duration
}

// Milliseconds returns the elapsed wall-clock time in milliseconds.
func (t Timing) Milliseconds() float64 {
	return float64(t.Elapsed) / float64(time.Millisecond)
}

// PerIteration returns the mean time of one kernel run.
func (t Timing) PerIteration() time.Duration {
	if t.Iterations == 0 {
		return 0
	}
	return t.Elapsed / time.Duration(t.Iterations)
}

// sink accumulates every iteration's results so the repeated computation is
// observably used. It is never reported.
var sink float64

// Run computes v over x and flags iterations times and returns the last
// iteration's result with the elapsed time of the whole loop.
func Run(v kernel.Variant, x []float64, flags []int, iterations int) (kernel.Result, Timing, error) {
	if iterations < 1 {
		return kernel.Result{}, Timing{}, fmt.Errorf("bench: %w, got %d", ErrIterations, iterations)
	}

	var r kernel.Result
	acc := 0.0
	start := time.Now()
	for i := 0; i < iterations; i++ {
		v.ComputeInto(x, flags, &r)
		acc += float64(r.Count) + r.Sum + r.Sum2
		if r.Len() > 0 {
			acc += r.Output[0] + r.Intermediate[0]
		}
	}
	elapsed := time.Since(start)
	sink += acc

	return r, Timing{Iterations: iterations, Elapsed: elapsed}, nil
}
