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
	"sort"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tableau is a dense simplex tableau.
//
// Row 0 holds the objective: entry 0 is the negated objective value and entry c is the reduced
// cost of the nonbasic variable in column c. Every other row r expresses its basic variable as
//
//	x_basic[r] = m[r][0] - sum over c >= 1 of m[r][c] * x_nonbasic[c]
//
// Variables are indexed with the LP columns first, then one slack per tableau row, then the
// phase 1 artificial.
type Tableau struct {
	m        *mat.Dense
	basic    []int // basic[r] is the variable of row r; basic[0] is unused.
	nonbasic []int // nonbasic[c] is the variable of column c; nonbasic[0] is unused.

	numCols    int
	artificial int // Index of the artificial variable, or -1.
	objective  []float64
	pivots     int
}

// newTableau lays out `lp` with the given column intervals. Every finite side of a row interval
// becomes one `<=` row, lower sides negated. Every finite column upper bound and every positive
// column lower bound becomes a row as well. If some right-hand side is below `-precision`, an
// artificial column with coefficient -1 in every row is appended for phase 1.
func newTableau(lp *LP, columns []Interval, precision float64) *Tableau {
	n := lp.NumCols()

	type row struct {
		rhs   float64
		sign  float64
		coefs []float64 // nil for a single column row.
		col   int
	}
	var rows []row
	for i, bounds := range lp.Rows {
		if bounds.HasUpper() {
			rows = append(rows, row{rhs: bounds.Upper, sign: 1, coefs: lp.A[i]})
		}
		if bounds.HasLower() {
			rows = append(rows, row{rhs: -bounds.Lower, sign: -1, coefs: lp.A[i]})
		}
	}
	for j, bounds := range columns {
		if bounds.HasUpper() {
			rows = append(rows, row{rhs: bounds.Upper, sign: 1, col: j})
		}
		if bounds.Lower > 0 {
			rows = append(rows, row{rhs: -bounds.Lower, sign: -1, col: j})
		}
	}

	needsPhase1 := false
	for _, r := range rows {
		if r.rhs < -precision {
			needsPhase1 = true
			break
		}
	}

	height := len(rows) + 1
	width := n + 1
	if needsPhase1 {
		width++
	}
	t := &Tableau{
		m:          mat.NewDense(height, width, nil),
		basic:      make([]int, height),
		nonbasic:   make([]int, width),
		numCols:    n,
		artificial: -1,
		objective:  lp.Objective,
	}
	t.basic[0] = -1
	t.nonbasic[0] = -1
	for c := 1; c <= n; c++ {
		t.nonbasic[c] = c - 1
	}
	if needsPhase1 {
		t.artificial = n + len(rows)
		t.nonbasic[width-1] = t.artificial
	}

	obj := t.m.RawRowView(0)
	copy(obj[1:n+1], lp.Objective)
	for i, r := range rows {
		data := t.m.RawRowView(i + 1)
		data[0] = r.rhs
		if r.coefs != nil {
			floats.AddScaled(data[1:n+1], r.sign, r.coefs)
		} else {
			data[r.col+1] = r.sign
		}
		if needsPhase1 {
			data[width-1] = -1
		}
		t.basic[i+1] = n + i
	}
	return t
}

// Dims returns the number of rows and columns of the tableau, including the objective row and the
// right-hand side column.
func (t *Tableau) Dims() (int, int) {
	return t.m.Dims()
}

// Value returns the objective value of the current basis.
func (t *Tableau) Value() float64 {
	return -t.m.At(0, 0)
}

// pivot exchanges the basic variable of `row` with the nonbasic variable of `col`.
func (t *Tableau) pivot(row, col int) {
	height, _ := t.m.Dims()
	pivotRow := t.m.RawRowView(row)
	p := pivotRow[col]
	floats.Scale(1/p, pivotRow)
	pivotRow[col] = 1
	for r := 0; r < height; r++ {
		if r == row {
			continue
		}
		data := t.m.RawRowView(r)
		f := data[col]
		if f == 0 {
			continue
		}
		floats.AddScaled(data, -f, pivotRow)
		data[col] = -f / p
	}
	pivotRow[col] = 1 / p

	t.basic[row], t.nonbasic[col] = t.nonbasic[col], t.basic[row]
	t.pivots++
	if log.V(2) {
		log.Infof("simplex: pivot %v on row %v, column %v (value %v)", t.pivots, row, col, t.Value())
	}
}

// enteringColumn returns the column with the largest reduced cost above `precision`, preferring
// the lowest column on ties. It returns 0 if no column improves the objective.
func (t *Tableau) enteringColumn(precision float64) int {
	obj := t.m.RawRowView(0)
	col, best := 0, precision
	for c := 1; c < len(obj); c++ {
		if obj[c] > best {
			col, best = c, obj[c]
		}
	}
	return col
}

// leavingRow returns the row passing the minimum ratio test for `col`, preferring the lowest row
// on ties. Only entries above `precision` take part. It returns 0 if `col` is unbounded.
func (t *Tableau) leavingRow(col int, precision float64) int {
	height, _ := t.m.Dims()
	row, minRatio := 0, 0.0
	for r := 1; r < height; r++ {
		v := t.m.At(r, col)
		if v <= precision {
			continue
		}
		rhs := t.m.At(r, 0)
		if rhs < 0 {
			rhs = 0
		}
		if ratio := rhs / v; row == 0 || ratio < minRatio {
			row, minRatio = r, ratio
		}
	}
	return row
}

// basisKey returns the sorted set of basic variables as a string.
func (t *Tableau) basisKey() string {
	vars := make([]int, len(t.basic)-1)
	copy(vars, t.basic[1:])
	sort.Ints(vars)
	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// restoreObjective replaces row 0 with the LP objective expressed over the current basis.
func (t *Tableau) restoreObjective() {
	height, _ := t.m.Dims()
	obj := t.m.RawRowView(0)
	for c := range obj {
		obj[c] = 0
	}
	for c := 1; c < len(obj); c++ {
		if v := t.nonbasic[c]; v < t.numCols {
			obj[c] = t.objective[v]
		}
	}
	for r := 1; r < height; r++ {
		if v := t.basic[r]; v < t.numCols && t.objective[v] != 0 {
			floats.AddScaled(obj, -t.objective[v], t.m.RawRowView(r))
		}
	}
}

// dropColumn removes column `col` from the tableau.
func (t *Tableau) dropColumn(col int) {
	height, width := t.m.Dims()
	last := width - 1
	if col != last {
		for r := 0; r < height; r++ {
			data := t.m.RawRowView(r)
			data[col], data[last] = data[last], data[col]
		}
		t.nonbasic[col], t.nonbasic[last] = t.nonbasic[last], t.nonbasic[col]
	}
	t.m = t.m.Slice(0, height, 0, last).(*mat.Dense)
	t.nonbasic = t.nonbasic[:last]
}

// columnOf returns the tableau column of nonbasic variable `v`, or 0 if `v` is basic.
func (t *Tableau) columnOf(v int) int {
	for c := 1; c < len(t.nonbasic); c++ {
		if t.nonbasic[c] == v {
			return c
		}
	}
	return 0
}

// rowOf returns the tableau row of basic variable `v`, or 0 if `v` is nonbasic.
func (t *Tableau) rowOf(v int) int {
	for r := 1; r < len(t.basic); r++ {
		if t.basic[r] == v {
			return r
		}
	}
	return 0
}

// values returns the value of each LP column in the current basis.
func (t *Tableau) values() []float64 {
	x := make([]float64, t.numCols)
	for r := 1; r < len(t.basic); r++ {
		if v := t.basic[r]; v < t.numCols {
			x[v] = t.m.At(r, 0)
		}
	}
	return x
}
