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

// Package branch searches for integer solutions of a linear program by branching on fractional
// columns of its relaxations.
//
// The search is best-first: open nodes are kept in a priority queue on the relaxation value of
// their parent. Every node only adds one column bound to its parent, so a node is a few words
// regardless of the depth of the tree, and nothing recurses.
package branch

import (
	"container/heap"
	"math"
	"time"

	"github.com/Ivordir/yalps/yalps/go/simplex"
	log "github.com/golang/glog"
)

// Relaxation solves the LP relaxation with every column restricted to its interval in `columns`.
// It must not keep or modify `columns`.
type Relaxation func(columns []simplex.Interval) simplex.Result

// Options controls a search.
type Options struct {
	// Precision is the integrality threshold, and the smallest objective improvement that keeps a
	// node open.
	Precision float64
	// Tolerance is the relative gap at which a candidate is accepted as optimal.
	Tolerance float64
	// Timeout bounds the wall clock time spent below the root. Zero means no limit.
	Timeout time.Duration
	// MaxIterations bounds the number of nodes solved below the root.
	MaxIterations int
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// Result holds the outcome of a search.
type Result struct {
	Status simplex.Status
	// Value is the maximized objective of X, NaN if there is no solution, or +inf if the root
	// relaxation is Unbounded.
	Value float64
	// X holds the best integer solution found, or nil.
	X []float64
	// UnboundedColumn is copied from an Unbounded root relaxation, and -1 otherwise.
	UnboundedColumn int
	// Iterations is the number of nodes solved below the root.
	Iterations int
}

type searcher struct {
	root     []simplex.Interval
	integers []bool
	relax    Relaxation
	opts     Options

	queue      nodeQueue
	seq        int
	best       *simplex.Result
	iterations int
}

// Search finds the best solution of the relaxation `relax` in which every column flagged in
// `integers` takes an integer value. `root` holds the column intervals of the root problem.
//
// A candidate is accepted as Optimal once no open node could improve on it by more than
// max(Tolerance*|candidate|, Precision). With a zero Tolerance this only stops when every node
// has been solved or pruned. Running out of iterations or time returns Timedout with the best
// candidate found so far, if any.
func Search(root []simplex.Interval, integers []bool, relax Relaxation, opts Options) Result {
	res := relax(root)
	if res.Status != simplex.Optimal {
		return Result{
			Status:          res.Status,
			Value:           res.Value,
			UnboundedColumn: res.UnboundedColumn,
		}
	}
	col := mostFractional(res.X, integers, opts.Precision)
	if col < 0 {
		return Result{Status: simplex.Optimal, Value: res.Value, X: res.X, UnboundedColumn: -1}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &searcher{root: root, integers: integers, relax: relax, opts: opts}
	s.branch(nil, res, col)

	start := now()
	for s.queue.Len() > 0 {
		if s.best != nil && !s.improves(s.queue[0].bound) {
			log.V(1).Infof("branch: accepting %v, best open bound is %v", s.best.Value, s.queue[0].bound)
			break
		}
		if s.iterations >= opts.MaxIterations {
			log.V(1).Infof("branch: iteration limit %v reached", opts.MaxIterations)
			return s.result(simplex.Timedout)
		}
		if opts.Timeout > 0 && now().Sub(start) >= opts.Timeout {
			log.V(1).Infof("branch: timeout %v reached after %v iterations", opts.Timeout, s.iterations)
			return s.result(simplex.Timedout)
		}

		n := heap.Pop(&s.queue).(*node)
		s.iterations++
		res := relax(n.columns(root))
		if res.Status != simplex.Optimal {
			if log.V(1) {
				log.Infof("branch: node %v at depth %v is %v", n.seq, n.depth, res.Status)
			}
			continue
		}
		if s.best != nil && !s.improves(res.Value) {
			continue
		}
		if col := mostFractional(res.X, integers, opts.Precision); col >= 0 {
			s.branch(n, res, col)
			continue
		}
		if s.best == nil || res.Value > s.best.Value {
			if log.V(1) {
				log.Infof("branch: candidate %v at node %v, depth %v", res.Value, n.seq, n.depth)
			}
			r := res
			s.best = &r
		}
	}
	if s.best == nil {
		return s.result(simplex.Infeasible)
	}
	return s.result(simplex.Optimal)
}

// improves reports whether a node bounded by `bound` could beat the current candidate by more
// than the accepted gap.
func (s *searcher) improves(bound float64) bool {
	best := s.best.Value
	gap := math.Max(s.opts.Tolerance*math.Abs(best), s.opts.Precision)
	return bound > best+gap
}

// branch queues the two children of `parent` that split column `col` around its value in `res`:
// first `x <= floor(v)`, then `x >= ceil(v)`.
func (s *searcher) branch(parent *node, res simplex.Result, col int) {
	v := res.X[col]
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	down := simplex.Interval{Lower: math.Inf(-1), Upper: math.Floor(v)}
	up := simplex.Interval{Lower: math.Ceil(v), Upper: math.Inf(1)}
	for _, bounds := range []simplex.Interval{down, up} {
		heap.Push(&s.queue, &node{
			parent: parent,
			col:    col,
			bounds: bounds,
			bound:  res.Value,
			seq:    s.seq,
			depth:  depth,
		})
		s.seq++
	}
}

func (s *searcher) result(status simplex.Status) Result {
	res := Result{Status: status, Value: math.NaN(), UnboundedColumn: -1, Iterations: s.iterations}
	if s.best != nil {
		res.Value = s.best.Value
		res.X = s.best.X
	}
	return res
}

// mostFractional returns the integer column of `x` whose fractional part is closest to 1/2,
// preferring the lowest column on ties. It returns -1 if every integer column is within
// `precision` of an integer.
func mostFractional(x []float64, integers []bool, precision float64) int {
	col, best := -1, precision
	for j, isInt := range integers {
		if !isInt {
			continue
		}
		f := x[j] - math.Floor(x[j])
		if d := math.Min(f, 1-f); d > best {
			col, best = j, d
		}
	}
	return col
}
