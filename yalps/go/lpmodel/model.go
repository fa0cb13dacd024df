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

// Package lpmodel describes mixed-integer linear programs by key and solves them.
//
// A `Model` names its constraints and variables with keys of any comparable type. Keys are
// resolved with Go map lookups, so two keys are the same key exactly when `==` says so; pointer
// keys compare by identity. Constraints are given as ordered (key, `Constraint`) pairs and
// variables as ordered (key, coefficients) pairs, where each coefficient names the constraint or
// the objective it contributes to.
//
// `Solve` and `SolveWithOptions` run the simplex method on the relaxation and, when integer or
// binary variables exist, a branch-and-cut search on top of it. Infeasible, unbounded, cycling
// and timed out problems are reported through `Solution.Status`, never as errors.
package lpmodel

import (
	"errors"
	"fmt"
	"math"

	"github.com/Ivordir/yalps/yalps/go/simplex"
)

// ErrInvalidModel holds the error when a model breaks its input contract.
var ErrInvalidModel = errors.New("invalid model")

// Direction is the direction of optimization.
type Direction int

// Directions of optimization.
const (
	Maximize Direction = iota
	Minimize
)

// String returns "maximize" or "minimize".
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) sign() (float64, error) {
	switch d {
	case Maximize:
		return 1, nil
	case Minimize:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %v", ErrInvalidModel, d)
	}
}

// Constraint bounds the sum of the coefficients times the values of the variables. Any field may
// be nil. Equal takes precedence over Min and Max.
type Constraint struct {
	Equal *float64
	Min   *float64
	Max   *float64
}

// EqualTo returns the constraint `== v`.
func EqualTo(v float64) Constraint {
	return Constraint{Equal: &v}
}

// LessEq returns the constraint `<= v`.
func LessEq(v float64) Constraint {
	return Constraint{Max: &v}
}

// GreaterEq returns the constraint `>= v`.
func GreaterEq(v float64) Constraint {
	return Constraint{Min: &v}
}

// InRange returns the constraint `>= lower` and `<= upper`.
func InRange(lower, upper float64) Constraint {
	return Constraint{Min: &lower, Max: &upper}
}

// Interval returns the constraint as a closed interval, with infinite sides for missing bounds.
// It returns an error if a bound is NaN, if Equal is infinite, if Min is +inf or Max is -inf, or
// if Min is greater than Max.
func (c Constraint) Interval() (simplex.Interval, error) {
	if c.Equal != nil {
		if math.IsNaN(*c.Equal) || math.IsInf(*c.Equal, 0) {
			return simplex.Interval{}, fmt.Errorf("equal is %v", *c.Equal)
		}
		return simplex.Point(*c.Equal), nil
	}
	iv := simplex.FullInterval()
	if c.Min != nil {
		if math.IsNaN(*c.Min) || math.IsInf(*c.Min, 1) {
			return simplex.Interval{}, fmt.Errorf("min is %v", *c.Min)
		}
		iv.Lower = *c.Min
	}
	if c.Max != nil {
		if math.IsNaN(*c.Max) || math.IsInf(*c.Max, -1) {
			return simplex.Interval{}, fmt.Errorf("max is %v", *c.Max)
		}
		iv.Upper = *c.Max
	}
	if iv.IsEmpty() {
		return simplex.Interval{}, fmt.Errorf("min %v is greater than max %v", iv.Lower, iv.Upper)
	}
	return iv, nil
}

// ConstraintEntry is a keyed constraint.
type ConstraintEntry[C comparable] struct {
	Key        C
	Constraint Constraint
}

// Coefficient is the coefficient of a variable in the constraint or objective `Key`.
type Coefficient[C comparable] struct {
	Key   C
	Value float64
}

// VariableEntry is a keyed variable with its coefficients.
type VariableEntry[V, C comparable] struct {
	Key          V
	Coefficients []Coefficient[C]
}

// Flags selects variables by key, or all of them.
type Flags[V comparable] struct {
	All  bool
	Keys []V
}

// FlagAll returns Flags selecting every variable.
func FlagAll[V comparable]() Flags[V] {
	return Flags[V]{All: true}
}

// FlagKeys returns Flags selecting the variables with the given keys.
func FlagKeys[V comparable](keys ...V) Flags[V] {
	return Flags[V]{Keys: keys}
}

// matcher returns a function reporting whether a key is selected.
func (f Flags[V]) matcher() func(V) bool {
	if f.All {
		return func(V) bool { return true }
	}
	set := make(map[V]bool, len(f.Keys))
	for _, k := range f.Keys {
		set[k] = true
	}
	return func(k V) bool { return set[k] }
}

// Model is a mixed-integer linear program.
//
// Constraints sharing a key are merged into the intersection of their bounds. Variables sharing
// a key are kept as separate columns. If a variable lists the same constraint key twice, the last
// coefficient wins.
type Model[V, C comparable] struct {
	Direction Direction
	// Objective is the key of the objective. Variables contribute to it through coefficients
	// with this key, and it may also be constrained. A nil Objective optimizes the zero
	// function, which makes the solve a feasibility check.
	Objective   *C
	Constraints []ConstraintEntry[C]
	Variables   []VariableEntry[V, C]
	// Integers selects the variables restricted to integer values.
	Integers Flags[V]
	// Binaries selects the variables restricted to 0 or 1.
	Binaries Flags[V]
}

// ObjectiveKey returns a pointer to `key`, for use as Model.Objective.
func ObjectiveKey[C comparable](key C) *C {
	return &key
}
