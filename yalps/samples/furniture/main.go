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

// The furniture command is an example of an integer program: how many tables and dressers to
// build from limited wood, labor and storage.
package main

import (
	"fmt"

	"github.com/Ivordir/yalps/yalps/go/lpmodel"
	log "github.com/golang/glog"
)

type coef = lpmodel.Coefficient[string]

func furniture() error {
	model := &lpmodel.Model[string, string]{
		Direction: lpmodel.Maximize,
		Objective: lpmodel.ObjectiveKey("profit"),
		Constraints: []lpmodel.ConstraintEntry[string]{
			{Key: "wood", Constraint: lpmodel.LessEq(300)},
			{Key: "labor", Constraint: lpmodel.LessEq(110)},
			{Key: "storage", Constraint: lpmodel.LessEq(400)},
		},
		Variables: []lpmodel.VariableEntry[string, string]{
			{Key: "table", Coefficients: []coef{{Key: "wood", Value: 30}, {Key: "labor", Value: 5}, {Key: "profit", Value: 1200}, {Key: "storage", Value: 30}}},
			{Key: "dresser", Coefficients: []coef{{Key: "wood", Value: 20}, {Key: "labor", Value: 10}, {Key: "profit", Value: 1600}, {Key: "storage", Value: 50}}},
		},
		Integers: lpmodel.FlagAll[string](),
	}

	solution, err := lpmodel.Solve(model)
	if err != nil {
		return fmt.Errorf("failed to solve the model: %w", err)
	}

	fmt.Printf("Status: %v\n", solution.Status)
	if solution.Status != lpmodel.Optimal {
		return nil
	}
	fmt.Printf("Profit: %v\n", solution.Result)
	for _, v := range solution.Variables {
		fmt.Printf(" %v = %v\n", v.Key, v.Value)
	}
	return nil
}

func main() {
	if err := furniture(); err != nil {
		log.Exitf("furniture returned with error: %v", err)
	}
}
