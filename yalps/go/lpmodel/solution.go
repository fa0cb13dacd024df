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

import "github.com/Ivordir/yalps/yalps/go/simplex"

// Status is the outcome of a solve.
type Status = simplex.Status

// Outcomes of a solve.
const (
	// Optimal means Result is the best objective, or within Options.Tolerance of it.
	Optimal = simplex.Optimal
	// Infeasible means no assignment satisfies every constraint.
	Infeasible = simplex.Infeasible
	// Unbounded means the objective can improve without limit.
	Unbounded = simplex.Unbounded
	// Timedout means branch-and-cut ran out of time or iterations. The best integer solution
	// found so far is reported, if any.
	Timedout = simplex.Timedout
	// Cycled means the simplex method repeated a basis or ran out of pivots.
	Cycled = simplex.Cycled
)

// VariableValue is the value of the variable `Key`.
type VariableValue[V comparable] struct {
	Key   V
	Value float64
}

// Solution holds the outcome of a solve.
type Solution[V comparable] struct {
	Status Status
	// Result is the objective value. It is NaN when there is no solution, and +inf or -inf for
	// an Unbounded maximization or minimization.
	Result float64
	// Variables holds the variable values in model order. Unless Options.IncludeZeroVariables
	// is set, zero values are left out. An Unbounded solution holds at most the variable that
	// grows without limit.
	Variables []VariableValue[V]
}

// Value returns the value of the first variable with key `key`. A variable missing from the
// solution is reported as 0 and false.
func (s Solution[V]) Value(key V) (float64, bool) {
	for _, v := range s.Variables {
		if v.Key == key {
			return v.Value, true
		}
	}
	return 0, false
}
