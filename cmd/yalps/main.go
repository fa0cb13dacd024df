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

// The yalps command solves a JSON model and prints the solution as JSON.
//
// Usage:
//
//	yalps [flags] [model.json]
//
// The model is read from standard input if no file is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Ivordir/yalps/yalps/go/lpjson"
	"github.com/Ivordir/yalps/yalps/go/lpmodel"
	log "github.com/golang/glog"
)

var (
	precision     = flag.Float64("precision", lpmodel.DefaultPrecision, "threshold below which numbers are treated as zero")
	checkCycles   = flag.Bool("check_cycles", false, "detect a repeated basis in the simplex method")
	maxPivots     = flag.Int("max_pivots", lpmodel.DefaultMaxPivots, "maximum number of pivots per relaxation")
	tolerance     = flag.Float64("tolerance", 0, "relative gap at which an integer solution is accepted")
	timeout       = flag.Duration("timeout", 0, "time limit of branch-and-cut, 0 for none")
	maxIterations = flag.Int("max_iterations", lpmodel.DefaultMaxIterations, "maximum number of branch-and-cut nodes")
	includeZero   = flag.Bool("include_zero_variables", false, "list variables with a zero value")
)

func options() lpmodel.Options {
	return lpmodel.Options{
		Precision:            *precision,
		CheckCycles:          *checkCycles,
		MaxPivots:            *maxPivots,
		Tolerance:            *tolerance,
		Timeout:              *timeout,
		MaxIterations:        *maxIterations,
		IncludeZeroVariables: *includeZero,
	}
}

func readModel(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("want at most one model file, got %v", len(args))
	}
}

func run(args []string, out io.Writer) error {
	data, err := readModel(args)
	if err != nil {
		return fmt.Errorf("failed to read the model: %w", err)
	}
	model, err := lpjson.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to parse the model: %w", err)
	}
	opts := options()
	solution, err := lpmodel.SolveWithOptions(model, &opts)
	if err != nil {
		return fmt.Errorf("failed to solve the model: %w", err)
	}
	encoded, err := lpjson.EncodeSolution(solution)
	if err != nil {
		return fmt.Errorf("failed to encode the solution: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", encoded)
	return err
}

func main() {
	flag.Parse()
	if err := run(flag.Args(), os.Stdout); err != nil {
		log.Exitf("yalps returned with error: %v", err)
	}
}
