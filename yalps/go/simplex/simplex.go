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

package simplex

import (
	"math"

	log "github.com/golang/glog"
)

// Solve solves the relaxation of `lp` where column j is restricted to `columns[j]`. If
// `columns` is nil, the default column intervals of `lp` are used. The LP and the intervals are
// only read.
//
// Solve does not validate `lp`; see LP.Validate.
func Solve(lp *LP, columns []Interval, opts Options) Result {
	if columns == nil {
		columns = lp.Columns
	}
	t := newTableau(lp, columns, opts.Precision)

	if status := t.phase1(opts); status != Optimal {
		return failed(status, t.pivots)
	}
	status, col := t.phase2(opts)
	switch status {
	case Optimal:
		return Result{
			Status:          Optimal,
			Value:           t.Value(),
			X:               t.values(),
			UnboundedColumn: -1,
			Pivots:          t.pivots,
		}
	case Unbounded:
		res := failed(Unbounded, t.pivots)
		res.Value = math.Inf(1)
		if v := t.nonbasic[col]; v < t.numCols {
			res.UnboundedColumn = v
		}
		return res
	default:
		return failed(status, t.pivots)
	}
}

// phase2 pivots to optimality on the objective in row 0. It returns the entering column when the
// problem is Unbounded.
func (t *Tableau) phase2(opts Options) (Status, int) {
	var seen map[string]bool
	if opts.CheckCycles {
		seen = map[string]bool{t.basisKey(): true}
	}
	for {
		col := t.enteringColumn(opts.Precision)
		if col == 0 {
			return Optimal, 0
		}
		row := t.leavingRow(col, opts.Precision)
		if row == 0 {
			return Unbounded, col
		}
		if t.pivots >= opts.MaxPivots {
			log.V(1).Infof("simplex: pivot limit %v reached", opts.MaxPivots)
			return Cycled, 0
		}
		t.pivot(row, col)
		if seen != nil {
			key := t.basisKey()
			if seen[key] {
				log.V(1).Infof("simplex: basis {%v} repeated after %v pivots", key, t.pivots)
				return Cycled, 0
			}
			seen[key] = true
		}
	}
}

// phase1 moves the tableau to a feasible basis. It is a no-op when the tableau was built without
// an artificial column.
//
// The artificial enters on the row with the most negative right-hand side, which makes every
// right-hand side non-negative. Phase 2 on the objective `maximize -artificial` then drives it
// to zero, unless the problem is infeasible. Afterwards the artificial leaves the basis if it can,
// its column is dropped, and the LP objective is restored over the new basis.
func (t *Tableau) phase1(opts Options) Status {
	if t.artificial < 0 {
		return Optimal
	}
	height, width := t.m.Dims()

	row, rhs := 0, -opts.Precision
	for r := 1; r < height; r++ {
		if v := t.m.At(r, 0); v < rhs {
			row, rhs = r, v
		}
	}
	col := width - 1
	if row != 0 {
		obj := t.m.RawRowView(0)
		for c := range obj {
			obj[c] = 0
		}
		obj[col] = -1

		if t.pivots >= opts.MaxPivots {
			return Cycled
		}
		t.pivot(row, col)
		if status, _ := t.phase2(opts); status == Cycled {
			return Cycled
		}
		if t.Value() < -opts.Precision {
			log.V(1).Infof("simplex: infeasible, artificial remains at %v", -t.Value())
			return Infeasible
		}
	}

	if r := t.rowOf(t.artificial); r != 0 {
		data := t.m.RawRowView(r)
		for c := 1; c < len(data); c++ {
			if math.Abs(data[c]) > opts.Precision {
				if t.pivots >= opts.MaxPivots {
					return Cycled
				}
				t.pivot(r, c)
				break
			}
		}
	}
	// A basic artificial left on an all-zero row stays at zero and keeps no column.
	if c := t.columnOf(t.artificial); c != 0 {
		t.dropColumn(c)
	}
	t.restoreObjective()
	return Optimal
}
