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

// Package simplex solves the continuous relaxation of a linear program with a dense tableau
// simplex method.
//
// The `LP` struct is the indexed, read-only form of a problem. `Solve` builds a fresh `Tableau`
// for one set of column intervals, finds a feasible basis when the all-slack basis is not
// feasible (phase 1), and then pivots to optimality (phase 2).
package simplex

import (
	"errors"
	"fmt"
	"math"
)

// ErrShape holds the error when the dimensions of an LP do not agree.
var ErrShape = errors.New("simplex: size mismatch")

// LP is a linear program of the form
//
//	maximize    Objective · x
//	subject to  Rows[i].Lower <= A[i] · x <= Rows[i].Upper
//	            Columns[j].Lower <= x[j] <= Columns[j].Upper
//	            x >= 0
//
// A minimization is expressed by negating Objective. An LP is never mutated by this package,
// so a single LP may be shared by any number of concurrent solves.
type LP struct {
	// A holds one dense coefficient row per constraint.
	A [][]float64
	// Rows holds the interval of each constraint.
	Rows []Interval
	// Objective holds one coefficient per column.
	Objective []float64
	// Columns holds the default interval of each column. Lower bounds below zero are ignored
	// since every column is non-negative.
	Columns []Interval
}

// NumRows returns the number of constraints.
func (lp *LP) NumRows() int {
	return len(lp.Rows)
}

// NumCols returns the number of columns.
func (lp *LP) NumCols() int {
	return len(lp.Objective)
}

// Validate checks that the dimensions of `lp` agree.
func (lp *LP) Validate() error {
	n := lp.NumCols()
	if len(lp.A) != len(lp.Rows) {
		return fmt.Errorf("%w: %v coefficient rows for %v row intervals", ErrShape, len(lp.A), len(lp.Rows))
	}
	if len(lp.Columns) != n {
		return fmt.Errorf("%w: %v column intervals for %v columns", ErrShape, len(lp.Columns), n)
	}
	for i, row := range lp.A {
		if len(row) != n {
			return fmt.Errorf("%w: row %v has %v coefficients, want %v", ErrShape, i, len(row), n)
		}
	}
	return nil
}

// Status is the outcome of a solve.
type Status int

// Outcomes of a solve. Timedout is only produced by searches that call Solve repeatedly.
const (
	Optimal Status = iota
	Infeasible
	Unbounded
	Timedout
	Cycled
)

var statusNames = [...]string{
	Optimal:    "optimal",
	Infeasible: "infeasible",
	Unbounded:  "unbounded",
	Timedout:   "timedout",
	Cycled:     "cycled",
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Options controls a single relaxation solve.
type Options struct {
	// Precision is the zero threshold: any |x| <= Precision is treated as zero.
	Precision float64
	// MaxPivots bounds the number of pivots of one solve. Running out is reported as Cycled.
	MaxPivots int
	// CheckCycles enables detection of a repeated basis within each phase.
	CheckCycles bool
}

// Result holds the outcome of a relaxation solve.
type Result struct {
	Status Status
	// Value is the maximized objective. It is NaN unless Status is Optimal, and +inf if the
	// problem is Unbounded.
	Value float64
	// X holds the value of each column. It is nil unless Status is Optimal.
	X []float64
	// UnboundedColumn is the column that could grow without limit when Status is Unbounded. It
	// is -1 otherwise, or when the unbounded direction enters through a slack.
	UnboundedColumn int
	// Pivots is the number of pivots performed.
	Pivots int
}

func failed(s Status, pivots int) Result {
	return Result{Status: s, Value: math.NaN(), UnboundedColumn: -1, Pivots: pivots}
}
