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

import "github.com/Ivordir/yalps/yalps/go/simplex"

// node is one open subproblem. It only stores the bound it adds to its parent; the column
// intervals of a node are rebuilt by replaying the chain over the root intervals.
type node struct {
	parent *node
	col    int
	bounds simplex.Interval
	// bound is the relaxation value of the parent, an upper bound on anything below this node.
	bound float64
	seq   int
	depth int
}

// columns returns the column intervals of `n`.
func (n *node) columns(root []simplex.Interval) []simplex.Interval {
	cols := make([]simplex.Interval, len(root))
	copy(cols, root)
	for p := n; p != nil; p = p.parent {
		cols[p.col] = cols[p.col].Intersect(p.bounds)
	}
	return cols
}

// nodeQueue is a max-heap of nodes on `bound`. Ties go to the older node.
type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].bound != q[j].bound {
		return q[i].bound > q[j].bound
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}
