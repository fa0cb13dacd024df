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

package branch

import (
	"container/heap"
	"math"
	"testing"
	"time"

	"github.com/Ivordir/yalps/yalps/go/simplex"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateNaNs()}

func defaultOpts() Options {
	return Options{Precision: 1e-8, MaxIterations: 32768}
}

func lessEq(v float64) simplex.Interval {
	return simplex.Interval{Lower: math.Inf(-1), Upper: v}
}

func nonNegative(n int) []simplex.Interval {
	cols := make([]simplex.Interval, n)
	for i := range cols {
		cols[i] = simplex.NonNegative()
	}
	return cols
}

func relaxationOf(lp *simplex.LP) Relaxation {
	opts := simplex.Options{Precision: 1e-8, MaxPivots: 8192}
	return func(columns []simplex.Interval) simplex.Result {
		return simplex.Solve(lp, columns, opts)
	}
}

func furniture() *simplex.LP {
	return &simplex.LP{
		A: [][]float64{
			{30, 20},
			{5, 10},
			{30, 50},
		},
		Rows:      []simplex.Interval{lessEq(300), lessEq(110), lessEq(400)},
		Objective: []float64{1200, 1600},
		Columns:   nonNegative(2),
	}
}

func knapsack() *simplex.LP {
	cols := make([]simplex.Interval, 4)
	for i := range cols {
		cols[i] = simplex.Interval{Lower: 0, Upper: 1}
	}
	return &simplex.LP{
		A:         [][]float64{{3, 4, 2, 3}},
		Rows:      []simplex.Interval{lessEq(7)},
		Objective: []float64{10, 13, 7, 8},
		Columns:   cols,
	}
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name     string
		lp       *simplex.LP
		integers []bool
		want     Result
	}{
		{
			name:     "furniture",
			lp:       furniture(),
			integers: []bool{true, true},
			want:     Result{Status: simplex.Optimal, Value: 14400, X: []float64{8, 3}, UnboundedColumn: -1},
		},
		{
			name:     "furniture without integers",
			lp:       furniture(),
			integers: []bool{false, false},
			want:     Result{Status: simplex.Optimal, Value: 44000.0 / 3, X: []float64{70.0 / 9, 10.0 / 3}, UnboundedColumn: -1},
		},
		{
			name:     "knapsack",
			lp:       knapsack(),
			integers: []bool{true, true, true, true},
			want:     Result{Status: simplex.Optimal, Value: 23, X: []float64{1, 1, 0, 0}, UnboundedColumn: -1},
		},
		{
			name: "no integer point",
			lp: &simplex.LP{
				A:         [][]float64{{2}},
				Rows:      []simplex.Interval{{Lower: 1, Upper: 1}},
				Objective: []float64{1},
				Columns:   nonNegative(1),
			},
			integers: []bool{true},
			want:     Result{Status: simplex.Infeasible, Value: math.NaN(), UnboundedColumn: -1},
		},
		{
			name: "unbounded root",
			lp: &simplex.LP{
				Objective: []float64{1},
				Columns:   nonNegative(1),
			},
			integers: []bool{true},
			want:     Result{Status: simplex.Unbounded, Value: math.Inf(1), UnboundedColumn: 0},
		},
		{
			name: "infeasible root",
			lp: &simplex.LP{
				A:         [][]float64{{1}},
				Rows:      []simplex.Interval{{Lower: 10, Upper: 5}},
				Objective: []float64{1},
				Columns:   nonNegative(1),
			},
			integers: []bool{true},
			want:     Result{Status: simplex.Infeasible, Value: math.NaN(), UnboundedColumn: -1},
		},
	}

	for _, test := range testCases {
		got := Search(test.lp.Columns, test.integers, relaxationOf(test.lp), defaultOpts())
		if diff := cmp.Diff(test.want, got, approx, cmpopts.IgnoreFields(Result{}, "Iterations")); diff != "" {
			t.Errorf("Search(%v) returned with unexpected diff (-want+got);\n%s", test.name, diff)
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	lp := furniture()
	integers := []bool{true, true}
	first := Search(lp.Columns, integers, relaxationOf(lp), defaultOpts())
	second := Search(lp.Columns, integers, relaxationOf(lp), defaultOpts())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Search() is not deterministic (-first+second);\n%s", diff)
	}
}

func TestSearch_MaxIterations(t *testing.T) {
	lp := furniture()
	opts := defaultOpts()
	opts.MaxIterations = 1

	got := Search(lp.Columns, []bool{true, true}, relaxationOf(lp), opts)
	if got.Status != simplex.Timedout {
		t.Errorf("Search(MaxIterations=1) status = %v, want %v", got.Status, simplex.Timedout)
	}
	if got.Iterations != 1 {
		t.Errorf("Search(MaxIterations=1) iterations = %v, want 1", got.Iterations)
	}
	if got.X == nil && !math.IsNaN(got.Value) {
		t.Errorf("Search(MaxIterations=1) value = %v without a solution, want NaN", got.Value)
	}
	for j, v := range got.X {
		if math.Abs(v-math.Round(v)) > 1e-8 {
			t.Errorf("Search(MaxIterations=1) X[%v] = %v, want an integer", j, v)
		}
	}
}

func TestSearch_Timeout(t *testing.T) {
	lp := furniture()
	clock := time.Unix(0, 0)
	opts := defaultOpts()
	opts.Timeout = time.Second
	opts.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	got := Search(lp.Columns, []bool{true, true}, relaxationOf(lp), opts)
	want := Result{Status: simplex.Timedout, Value: math.NaN(), UnboundedColumn: -1}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Search(Timeout) returned with unexpected diff (-want+got);\n%s", diff)
	}
}

func TestSearch_Tolerance(t *testing.T) {
	lp := furniture()
	integers := []bool{true, true}
	exact := Search(lp.Columns, integers, relaxationOf(lp), defaultOpts())

	opts := defaultOpts()
	opts.Tolerance = 0.5
	got := Search(lp.Columns, integers, relaxationOf(lp), opts)

	if got.Status != simplex.Optimal {
		t.Fatalf("Search(Tolerance=0.5) status = %v, want %v", got.Status, simplex.Optimal)
	}
	if got.Value < exact.Value/1.5 {
		t.Errorf("Search(Tolerance=0.5) value = %v, want at least %v", got.Value, exact.Value/1.5)
	}
	if got.Iterations > exact.Iterations {
		t.Errorf("Search(Tolerance=0.5) iterations = %v, want at most %v", got.Iterations, exact.Iterations)
	}
	for j, v := range got.X {
		if math.Abs(v-math.Round(v)) > 1e-8 {
			t.Errorf("Search(Tolerance=0.5) X[%v] = %v, want an integer", j, v)
		}
	}
}

func TestSearch_NodeSkipsFailedRelaxations(t *testing.T) {
	// The root is fractional, the down branch is infeasible, and the up branch is integral.
	relax := func(columns []simplex.Interval) simplex.Result {
		switch {
		case columns[0].Upper == 1:
			return simplex.Result{Status: simplex.Infeasible, Value: math.NaN(), UnboundedColumn: -1}
		case columns[0].Lower == 2:
			return simplex.Result{Status: simplex.Optimal, Value: 4, X: []float64{2}, UnboundedColumn: -1}
		default:
			return simplex.Result{Status: simplex.Optimal, Value: 5, X: []float64{1.5}, UnboundedColumn: -1}
		}
	}

	got := Search([]simplex.Interval{simplex.NonNegative()}, []bool{true}, relax, defaultOpts())
	want := Result{Status: simplex.Optimal, Value: 4, X: []float64{2}, UnboundedColumn: -1, Iterations: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() returned with unexpected diff (-want+got);\n%s", diff)
	}
}

func TestMostFractional(t *testing.T) {
	testCases := []struct {
		x        []float64
		integers []bool
		want     int
	}{
		{x: []float64{1, 2, 3}, integers: []bool{true, true, true}, want: -1},
		{x: []float64{0.2, 0.5, 0.7}, integers: []bool{true, true, true}, want: 1},
		{x: []float64{0.2, 0.5, 0.7}, integers: []bool{true, false, true}, want: 2},
		{x: []float64{1.4, 2.7}, integers: []bool{true, true}, want: 0},
		{x: []float64{3 - 1e-10, 0.5}, integers: []bool{true, false}, want: -1},
	}

	for _, test := range testCases {
		if got := mostFractional(test.x, test.integers, 1e-8); got != test.want {
			t.Errorf("mostFractional(%v, %v) = %v, want %v", test.x, test.integers, got, test.want)
		}
	}
}

func TestNodeQueue(t *testing.T) {
	var q nodeQueue
	for i, bound := range []float64{1, 3, 3, 2} {
		heap.Push(&q, &node{bound: bound, seq: i})
	}
	var got []int
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(*node).seq)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 0}, got); diff != "" {
		t.Errorf("nodeQueue pop order returned with unexpected diff (-want+got);\n%s", diff)
	}
}

func TestNode_Columns(t *testing.T) {
	root := nonNegative(2)
	parent := &node{col: 0, bounds: simplex.Interval{Lower: math.Inf(-1), Upper: 4}}
	child := &node{parent: parent, col: 0, bounds: simplex.Interval{Lower: 2, Upper: math.Inf(1)}}
	leaf := &node{parent: child, col: 1, bounds: simplex.Interval{Lower: math.Inf(-1), Upper: 0}}

	got := leaf.columns(root)
	want := []simplex.Interval{{Lower: 2, Upper: 4}, {Lower: 0, Upper: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("columns() returned with unexpected diff (-want+got);\n%s", diff)
	}
	if diff := cmp.Diff(nonNegative(2), root); diff != "" {
		t.Errorf("columns() modified the root intervals (-want+got);\n%s", diff)
	}
}
