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

// Command vkernel runs the fixed log/exp kernel and validates its output.
//
// Usage:
//
//	vkernel                              # report of the default variant
//	vkernel --variant section --timed    # 100 timed iterations
//	vkernel --format json
//	vkernel compare cilk.txt openmp.txt  # exit 1 on mismatch
//	vkernel verify                       # check every variant against a 256-bit oracle
//	vkernel info                         # dispatch level and variants
//
// The report goes to stdout; diagnostics go to stderr.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errVerdict) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
