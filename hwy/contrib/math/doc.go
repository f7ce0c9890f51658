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

// Package math provides transcendental functions over hwy lane vectors.
//
// Only the functions the kernels need are provided:
//   - Exp(v Vec[T]) Vec[T] - e^x
//   - Log(v Vec[T]) Vec[T] - ln(x)
//
// Results follow IEEE 754 special-value semantics: no function returns an
// error, out-of-domain lanes become NaN or ±Inf.
package math
