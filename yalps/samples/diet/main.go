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

// The diet command is an example of a continuous minimization: the cheapest amounts of foods that
// meet nutritional requirements.
package main

import (
	"fmt"

	"github.com/Ivordir/yalps/yalps/go/lpmodel"
	log "github.com/golang/glog"
)

type food struct {
	name                   string
	cost, protein, fat, kc float64
}

func diet() error {
	foods := []food{
		{name: "oats", cost: 0.2, protein: 13, fat: 7, kc: 380},
		{name: "eggs", cost: 0.3, protein: 13, fat: 11, kc: 155},
		{name: "milk", cost: 0.1, protein: 3.4, fat: 1, kc: 42},
		{name: "lentils", cost: 0.25, protein: 9, fat: 0.4, kc: 116},
	}

	model := &lpmodel.Model[string, string]{
		Direction: lpmodel.Minimize,
		Objective: lpmodel.ObjectiveKey("cost"),
		Constraints: []lpmodel.ConstraintEntry[string]{
			{Key: "protein", Constraint: lpmodel.GreaterEq(60)},
			{Key: "fat", Constraint: lpmodel.InRange(30, 70)},
			{Key: "kc", Constraint: lpmodel.InRange(1800, 2200)},
		},
	}
	// Amounts are in units of 100g.
	for _, f := range foods {
		model.Variables = append(model.Variables, lpmodel.VariableEntry[string, string]{
			Key: f.name,
			Coefficients: []lpmodel.Coefficient[string]{
				{Key: "cost", Value: f.cost},
				{Key: "protein", Value: f.protein},
				{Key: "fat", Value: f.fat},
				{Key: "kc", Value: f.kc},
			},
		})
	}

	solution, err := lpmodel.Solve(model)
	if err != nil {
		return fmt.Errorf("failed to solve the model: %w", err)
	}

	fmt.Printf("Status: %v\n", solution.Status)
	if solution.Status != lpmodel.Optimal {
		return nil
	}
	fmt.Printf("Cost: %.2f\n", solution.Result)
	for _, v := range solution.Variables {
		fmt.Printf(" %v = %.0fg\n", v.Key, v.Value*100)
	}
	return nil
}

func main() {
	if err := diet(); err != nil {
		log.Exitf("diet returned with error: %v", err)
	}
}
