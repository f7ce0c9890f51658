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

// Package compare checks two KEY=value reports against each other.
//
// Every key of the first report must be present in the second. Numeric
// values match when their absolute difference is within the tolerance;
// other values must be equal as strings. Keys only present in the second
// report are ignored.
package compare

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultTolerance is the absolute tolerance used by the command.
const DefaultTolerance = 1e-12

// ErrMalformed is returned for report lines that cannot be parsed.
var ErrMalformed = errors.New("malformed report line")

// Value is one report value: numeric when IsNumber is set, text otherwise.
type Value struct {
	Text     string
	Number   float64
	IsNumber bool
}

func parseValue(s string) Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{Text: s, Number: f, IsNumber: true}
	}
	return Value{Text: s}
}

// String returns the value as it should appear in a verdict line.
func (v Value) String() string {
	if v.IsNumber {
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return v.Text
}

// Record is a parsed report that keeps the keys in first-seen order.
type Record struct {
	Keys   []string
	Values map[string]Value
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Parse reads a report. Lines without '=' are skipped; key and value are
// split at the first '=' and trimmed. A repeated key keeps its first
// position and takes the last value.
func Parse(r io.Reader) (Record, error) {
	rec := Record{Values: map[string]Value{}}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if key == "" {
			return Record{}, fmt.Errorf("line %d: %w: empty key in %q", lineNo, ErrMalformed, line)
		}
		if _, seen := rec.Values[key]; !seen {
			rec.Keys = append(rec.Keys, key)
		}
		rec.Values[key] = parseValue(val)
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("reading report: %w", err)
	}
	return rec, nil
}

// ParseFile reads the report stored at path.
func ParseFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()
	rec, err := Parse(f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Status is the verdict for one key.
type Status int

const (
	StatusOK Status = iota
	StatusMismatch
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMismatch:
		return "MISMATCH"
	case StatusMissing:
		return "MISSING"
	default:
		return "UNKNOWN"
	}
}

// Entry is the comparison of one key.
type Entry struct {
	Key    string
	Status Status
	A, B   Value
	// Diff and Rel are the absolute and relative differences of numeric pairs.
	Diff, Rel float64
}

// Outcome is the result of comparing two records.
type Outcome struct {
	Entries   []Entry
	Tolerance float64
}

// Passed reports whether every key matched.
func (o Outcome) Passed() bool {
	return o.NumFailed() == 0
}

// NumFailed returns the number of keys that are missing or mismatched.
func (o Outcome) NumFailed() int {
	return lo.CountBy(o.Entries, func(e Entry) bool { return e.Status != StatusOK })
}

// Failures returns the entries that did not match.
func (o Outcome) Failures() []Entry {
	return lo.Filter(o.Entries, func(e Entry, _ int) bool { return e.Status != StatusOK })
}

// Compare checks every key of a against b in a's key order.
func Compare(a, b Record, tolerance float64) Outcome {
	out := Outcome{Tolerance: tolerance, Entries: make([]Entry, 0, len(a.Keys))}
	for _, key := range a.Keys {
		av := a.Values[key]
		bv, ok := b.Get(key)
		e := Entry{Key: key, A: av, B: bv}
		switch {
		case !ok:
			e.Status = StatusMissing
		case av.IsNumber && bv.IsNumber:
			e.Diff = math.Abs(av.Number - bv.Number)
			e.Rel = e.Diff / math.Max(math.Abs(av.Number), 1e-15)
			if !numbersMatch(av.Number, bv.Number, e.Diff, tolerance) {
				e.Status = StatusMismatch
			}
		case av.Text != bv.Text:
			e.Status = StatusMismatch
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

func numbersMatch(a, b, diff, tolerance float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}
	return diff <= tolerance
}

// Write prints one line per key and the final verdict. nameA and nameB label
// the two reports in mismatch lines.
func (o Outcome) Write(w io.Writer, nameA, nameB string) error {
	bw := bufio.NewWriter(w)
	for _, e := range o.Entries {
		switch {
		case e.Status == StatusMissing:
			fmt.Fprintf(bw, "MISSING: %s not in %s output\n", e.Key, nameB)
		case e.Status == StatusMismatch && e.A.IsNumber && e.B.IsNumber:
			fmt.Fprintf(bw, "MISMATCH: %s %s=%s %s=%s diff=%.2e rel=%.2e\n",
				e.Key, nameA, e.A, nameB, e.B, e.Diff, e.Rel)
		case e.Status == StatusMismatch:
			fmt.Fprintf(bw, "MISMATCH: %s %s=%s %s=%s\n", e.Key, nameA, e.A, nameB, e.B)
		case e.A.IsNumber:
			fmt.Fprintf(bw, "OK: %s diff=%.2e\n", e.Key, e.Diff)
		default:
			fmt.Fprintf(bw, "OK: %s = %s\n", e.Key, e.A)
		}
	}
	if o.Passed() {
		fmt.Fprintln(bw, "\nSUCCESS: All values match within tolerance")
	} else {
		fmt.Fprintln(bw, "\nFAILURE: Some values differ beyond tolerance")
	}
	return bw.Flush()
}
