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

package lpmodel_test

import (
	"fmt"

	"github.com/Ivordir/yalps/yalps/go/lpmodel"
)

type coef = lpmodel.Coefficient[string]

func ExampleSolve() {
	model := &lpmodel.Model[string, string]{
		Direction: lpmodel.Maximize,
		Objective: lpmodel.ObjectiveKey("profit"),
		Constraints: []lpmodel.ConstraintEntry[string]{
			{Key: "wood", Constraint: lpmodel.LessEq(300)},
			{Key: "labor", Constraint: lpmodel.LessEq(110)},
			{Key: "storage", Constraint: lpmodel.LessEq(400)},
		},
		Variables: []lpmodel.VariableEntry[string, string]{
			{Key: "table", Coefficients: []coef{{"wood", 30}, {"labor", 5}, {"profit", 1200}, {"storage", 30}}},
			{Key: "dresser", Coefficients: []coef{{"wood", 20}, {"labor", 10}, {"profit", 1600}, {"storage", 50}}},
		},
		Integers: lpmodel.FlagAll[string](),
	}

	solution, err := lpmodel.Solve(model)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(solution.Status)
	fmt.Println(solution.Result)
	for _, v := range solution.Variables {
		fmt.Printf("%v: %v\n", v.Key, v.Value)
	}
	// Output:
	// optimal
	// 14400
	// table: 8
	// dresser: 3
}
