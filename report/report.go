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

// Package report formats kernel results as line-oriented KEY=value text.
//
// The layout is fixed:
//
//	TIMING_MS=<ms, 3 decimals>      (timed runs only)
//	ITERATIONS=<n>                  (timed runs only)
//	VLENGTH=<n>
//	REDUCTION_COUNT=<count>
//	REDUCTION_SUM=<sum>
//	REDUCTION_SUM2=<sum2>
//	OUTPUT[i]=<output[i]>           i = 0..n-1
//	INTERMEDIATE[i]=<intermediate[i]>
//
// Floats are printed like C's %.15g so reports from different toolchains can
// be diffed line by line.
package report

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/ajroetker/vkernel/bench"
	"github.com/ajroetker/vkernel/kernel"
)

// Keys used in reports.
const (
	KeyTimingMS     = "TIMING_MS"
	KeyIterations   = "ITERATIONS"
	KeyVLength      = "VLENGTH"
	KeyCount        = "REDUCTION_COUNT"
	KeySum          = "REDUCTION_SUM"
	KeySum2         = "REDUCTION_SUM2"
	KeyOutput       = "OUTPUT"
	KeyIntermediate = "INTERMEDIATE"
)

// FormatFloat formats f with 15 significant digits in the shortest general
// form, matching C's "%.15g". Non-finite values use C's spelling.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 15, 64)
}

// Line is one KEY=value pair of a report.
type Line struct {
	Key   string
	Value string
}

// String returns the line as KEY=value.
func (l Line) String() string {
	return l.Key + "=" + l.Value
}

func indexed(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}

// Lines returns the report lines for r in output order. timing may be nil
// for an untimed run.
func Lines(r kernel.Result, timing *bench.Timing) []Line {
	n := r.Len()
	lines := make([]Line, 0, 6+2*n)
	if timing != nil {
		lines = append(lines,
			Line{KeyTimingMS, strconv.FormatFloat(timing.Milliseconds(), 'f', 3, 64)},
			Line{KeyIterations, strconv.Itoa(timing.Iterations)},
		)
	}
	lines = append(lines,
		Line{KeyVLength, strconv.Itoa(n)},
		Line{KeyCount, strconv.Itoa(r.Count)},
		Line{KeySum, FormatFloat(r.Sum)},
		Line{KeySum2, FormatFloat(r.Sum2)},
	)
	for i, v := range r.Output {
		lines = append(lines, Line{indexed(KeyOutput, i), FormatFloat(v)})
	}
	for i, v := range r.Intermediate {
		lines = append(lines, Line{indexed(KeyIntermediate, i), FormatFloat(v)})
	}
	return lines
}

// Write writes the text report for r to w.
func Write(w io.Writer, r kernel.Result, timing *bench.Timing) error {
	bw := bufio.NewWriter(w)
	for _, l := range Lines(r, timing) {
		bw.WriteString(l.Key)
		bw.WriteByte('=')
		bw.WriteString(l.Value)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
