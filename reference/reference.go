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

// Package reference computes the kernel in arbitrary precision and measures
// how far a float64 result is from it.
//
// Inputs and the 0.1 offset are taken as the exact float64 values the kernel
// sees, so the measured error is the error of the float64 evaluation only.
package reference

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/ajroetker/vkernel/kernel"
)

// DefaultPrec is the mantissa precision, in bits, of the oracle.
const DefaultPrec = 256

// Oracle evaluates the kernel with big.Float arithmetic.
type Oracle struct {
	prec uint
}

// New returns an oracle with the given precision. prec 0 selects DefaultPrec.
func New(prec uint) *Oracle {
	if prec == 0 {
		prec = DefaultPrec
	}
	return &Oracle{prec: prec}
}

func (o *Oracle) float(x float64) *big.Float {
	return new(big.Float).SetPrec(o.prec).SetFloat64(x)
}

// negLog2 returns -ln(x) * 2.
func (o *Oracle) negLog2(x float64) *big.Float {
	r := bigfloat.Log(o.float(x))
	r.Mul(r, o.float(2))
	return r.Neg(r)
}

// expRatio returns exp(-x) / (x + 0.1).
func (o *Oracle) expRatio(x float64) *big.Float {
	num := bigfloat.Exp(o.float(-x))
	den := new(big.Float).SetPrec(o.prec).Add(o.float(x), o.float(0.1))
	return new(big.Float).SetPrec(o.prec).Quo(num, den)
}

// Compute returns the correctly rounded result for x and flags. Sums are
// accumulated in full precision and rounded once. Lanes with x <= 0 or a
// non-finite x fall back to float64 math, since IEEE special values have no
// big.Float counterpart.
func (o *Oracle) Compute(x []float64, flags []int) kernel.Result {
	n := len(x)
	r := kernel.Result{
		Output:       make([]float64, n),
		Intermediate: make([]float64, n),
	}
	sum := o.float(0)
	sum2 := o.float(0)
	special := false

	for i, xi := range x {
		if xi <= 0 || math.IsNaN(xi) || math.IsInf(xi, 0) {
			r.Output[i] = kernel.NegLog2(xi)
			r.Intermediate[i] = kernel.ExpRatio(xi)
			special = true
			continue
		}
		out := o.negLog2(xi)
		inter := o.expRatio(xi)
		r.Output[i], _ = out.Float64()
		r.Intermediate[i], _ = inter.Float64()
		sum.Add(sum, out)
		sum2.Add(sum2, inter)
	}
	for _, f := range flags {
		r.Count += f
	}

	if special {
		r.Sum = naiveSum(r.Output)
		r.Sum2 = naiveSum(r.Intermediate)
	} else {
		r.Sum, _ = sum.Float64()
		r.Sum2, _ = sum2.Float64()
	}
	return r
}

func naiveSum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
