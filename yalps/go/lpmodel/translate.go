// Copyright 2026 The YALPS Authors
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

package lpmodel

import (
	"math"

	"github.com/Ivordir/yalps/yalps/go/branch"
)

// maxExact is the magnitude above which a float64 has no fractional part left to round.
const maxExact = 1 << 53

// translate maps the columns of `res` back to variable keys.
func (n *normalized[V]) translate(res branch.Result, opts *Options) Solution[V] {
	if res.Status == Unbounded {
		sol := Solution[V]{Status: Unbounded, Result: n.sign * math.Inf(1)}
		if col := res.UnboundedColumn; col >= 0 {
			sol.Variables = []VariableValue[V]{{Key: n.keys[col], Value: math.Inf(1)}}
		}
		return sol
	}
	if res.X == nil {
		return Solution[V]{Status: res.Status, Result: math.NaN()}
	}

	sol := Solution[V]{Status: res.Status}
	result := 0.0
	for j, v := range res.X {
		// Continuous columns enter the result unrounded.
		if n.integers[j] {
			v = snapToInteger(v, opts.Precision)
			result += n.objective[j] * v
		} else {
			result += n.objective[j] * v
			v = roundToPrecision(v, opts.Precision)
		}
		if opts.IncludeZeroVariables || math.Abs(v) > opts.Precision {
			sol.Variables = append(sol.Variables, VariableValue[V]{Key: n.keys[j], Value: v})
		}
	}
	sol.Result = roundToPrecision(result, opts.Precision)
	return sol
}

// snapToInteger returns the integer nearest to `v` if it is within `precision`, and `v`
// otherwise.
func snapToInteger(v, precision float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) > precision {
		return v
	}
	if r == 0 {
		return 0 // Drops the sign of -0.
	}
	return r
}

// roundToPrecision rounds `v` to the nearest multiple of `precision`, computed as a division by
// 1/precision so that values like 5 stay exact.
func roundToPrecision(v, precision float64) float64 {
	if precision <= 0 {
		return v
	}
	scale := math.Round(1 / precision)
	if scale < 1 || math.IsInf(scale, 0) || math.Abs(v*scale) >= maxExact {
		return v
	}
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
