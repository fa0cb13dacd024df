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
	"errors"
	"fmt"
	"math"

	"github.com/Ivordir/yalps/yalps/go/simplex"
	log "github.com/golang/glog"
)

// normalized is the indexed form of a Model.
type normalized[V comparable] struct {
	lp *simplex.LP
	// keys holds the key of each column.
	keys     []V
	integers []bool
	// objective holds the objective coefficient of each column in the direction of the model.
	objective []float64
	sign      float64
}

func (n *normalized[V]) hasIntegers() bool {
	for _, isInt := range n.integers {
		if isInt {
			return true
		}
	}
	return false
}

// normalize indexes `m`: one column per variable entry in order, one row per distinct constraint
// key in order of first occurrence.
func normalize[V, C comparable](m *Model[V, C]) (*normalized[V], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidModel)
	}
	sign, err := m.Direction.sign()
	if err != nil {
		return nil, err
	}

	rowOf := make(map[C]int, len(m.Constraints))
	var rows []simplex.Interval
	for i, entry := range m.Constraints {
		iv, err := entry.Constraint.Interval()
		if err != nil {
			return nil, fmt.Errorf("%w: constraint %v at %v: %v", ErrInvalidModel, entry.Key, i, err)
		}
		if r, ok := rowOf[entry.Key]; ok {
			rows[r] = rows[r].Intersect(iv)
			continue
		}
		rowOf[entry.Key] = len(rows)
		rows = append(rows, iv)
	}

	numCols := len(m.Variables)
	a := make([][]float64, len(rows))
	for r := range a {
		a[r] = make([]float64, numCols)
	}
	n := &normalized[V]{
		lp: &simplex.LP{
			A:         a,
			Rows:      rows,
			Objective: make([]float64, numCols),
			Columns:   make([]simplex.Interval, numCols),
		},
		keys:      make([]V, numCols),
		integers:  make([]bool, numCols),
		objective: make([]float64, numCols),
		sign:      sign,
	}

	objectiveUsed := m.Objective == nil
	if m.Objective != nil {
		_, objectiveUsed = rowOf[*m.Objective]
	}
	for j, entry := range m.Variables {
		n.keys[j] = entry.Key
		for _, coef := range entry.Coefficients {
			if math.IsNaN(coef.Value) || math.IsInf(coef.Value, 0) {
				return nil, fmt.Errorf("%w: variable %v has coefficient %v for %v", ErrInvalidModel, entry.Key, coef.Value, coef.Key)
			}
			if m.Objective != nil && coef.Key == *m.Objective {
				n.objective[j] = coef.Value
				objectiveUsed = true
			}
			if r, ok := rowOf[coef.Key]; ok {
				a[r][j] = coef.Value
			}
		}
		n.lp.Objective[j] = sign * n.objective[j]
	}
	if !objectiveUsed {
		return nil, fmt.Errorf("%w: objective %v is neither a constraint nor a coefficient of any variable", ErrInvalidModel, *m.Objective)
	}

	isInt := m.Integers.matcher()
	isBin := m.Binaries.matcher()
	for j, key := range n.keys {
		n.lp.Columns[j] = simplex.NonNegative()
		if isBin(key) {
			n.lp.Columns[j].Upper = 1
			n.integers[j] = true
		} else if isInt(key) {
			n.integers[j] = true
		}
	}

	if err := n.lp.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidModel, err)
	}
	if log.V(1) {
		log.Infof("lpmodel: %v rows, %v columns, integers: %v", len(rows), numCols, n.hasIntegers())
	}
	return n, nil
}
