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

// The knapsack command is an example of a binary program solved with a time limit and a
// relative gap.
package main

import (
	"fmt"
	"time"

	"github.com/Ivordir/yalps/yalps/go/lpmodel"
	log "github.com/golang/glog"
)

func knapsack() error {
	weights := []float64{95, 4, 60, 32, 23, 72, 80, 62, 65, 46}
	values := []float64{55, 10, 47, 5, 4, 50, 8, 61, 85, 87}
	const capacity = 269

	model := &lpmodel.Model[int, string]{
		Direction:   lpmodel.Maximize,
		Objective:   lpmodel.ObjectiveKey("value"),
		Constraints: []lpmodel.ConstraintEntry[string]{{Key: "weight", Constraint: lpmodel.LessEq(capacity)}},
		Binaries:    lpmodel.FlagAll[int](),
	}
	for i := range weights {
		model.Variables = append(model.Variables, lpmodel.VariableEntry[int, string]{
			Key: i,
			Coefficients: []lpmodel.Coefficient[string]{
				{Key: "weight", Value: weights[i]},
				{Key: "value", Value: values[i]},
			},
		})
	}

	// Accepts a solution within 1% of the optimum, found in at most 10 seconds.
	opts := lpmodel.DefaultOptions()
	opts.Tolerance = 0.01
	opts.Timeout = 10 * time.Second

	solution, err := lpmodel.SolveWithOptions(model, &opts)
	if err != nil {
		return fmt.Errorf("failed to solve the model: %w", err)
	}

	fmt.Printf("Status: %v\n", solution.Status)
	if solution.Status != lpmodel.Optimal && solution.Status != lpmodel.Timedout {
		return nil
	}
	fmt.Printf("Value: %v\n", solution.Result)
	weight := 0.0
	for _, v := range solution.Variables {
		fmt.Printf(" item %v (weight %v, value %v)\n", v.Key, weights[v.Key], values[v.Key])
		weight += weights[v.Key]
	}
	fmt.Printf("Weight: %v of %v\n", weight, capacity)
	return nil
}

func main() {
	if err := knapsack(); err != nil {
		log.Exitf("knapsack returned with error: %v", err)
	}
}
