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
	"github.com/Ivordir/yalps/yalps/go/branch"
	"github.com/Ivordir/yalps/yalps/go/simplex"
	log "github.com/golang/glog"
)

// Solve solves the model `m` with the default options.
func Solve[V, C comparable](m *Model[V, C]) (Solution[V], error) {
	return SolveWithOptions(m, nil)
}

// SolveWithOptions solves the model `m` with the given options. If `opts` is nil, the default
// options are used.
//
// The returned error is non-nil only when `m` or `opts` breaks its contract, in which case it
// wraps ErrInvalidModel or ErrInvalidOptions and no solving was attempted.
func SolveWithOptions[V, C comparable](m *Model[V, C], opts *Options) (Solution[V], error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}
	if err := opts.Validate(); err != nil {
		return Solution[V]{}, err
	}
	n, err := normalize(m)
	if err != nil {
		return Solution[V]{}, err
	}

	sopts := simplex.Options{
		Precision:   opts.Precision,
		MaxPivots:   opts.MaxPivots,
		CheckCycles: opts.CheckCycles,
	}
	relax := func(columns []simplex.Interval) simplex.Result {
		return simplex.Solve(n.lp, columns, sopts)
	}

	var res branch.Result
	if n.hasIntegers() {
		res = branch.Search(n.lp.Columns, n.integers, relax, branch.Options{
			Precision:     opts.Precision,
			Tolerance:     opts.Tolerance,
			Timeout:       opts.Timeout,
			MaxIterations: opts.MaxIterations,
		})
	} else {
		r := relax(n.lp.Columns)
		res = branch.Result{Status: r.Status, Value: r.Value, X: r.X, UnboundedColumn: r.UnboundedColumn}
	}
	if res.Status == Cycled {
		log.Warningf("lpmodel: the simplex method cycled (max pivots %v, check cycles %v)", opts.MaxPivots, opts.CheckCycles)
	}
	return n.translate(res, opts), nil
}
