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
	"time"
)

// ErrInvalidOptions holds the error when an Options value is out of range.
var ErrInvalidOptions = errors.New("invalid options")

// Default values of Options.
const (
	DefaultPrecision     = 1e-8
	DefaultMaxPivots     = 8192
	DefaultMaxIterations = 32768
)

// Options controls a solve. Start from DefaultOptions and change what you need:
//
//	opts := lpmodel.DefaultOptions()
//	opts.Tolerance = 0.01
//	opts.Timeout = 10 * time.Second
//	solution, err := lpmodel.SolveWithOptions(model, &opts)
type Options struct {
	// Precision is the threshold below which a number is treated as zero, and within which a
	// value counts as an integer.
	Precision float64
	// CheckCycles detects a repeated basis in the simplex method and reports Cycled as soon as
	// it happens. Without it, only MaxPivots stops a cycling solve.
	CheckCycles bool
	// MaxPivots bounds the pivots of each relaxation solve. Running out is reported as Cycled.
	MaxPivots int
	// Tolerance is the relative gap at which an integer solution is accepted as optimal. With
	// Tolerance 0.05, the result is within 5% of the best possible objective.
	Tolerance float64
	// Timeout bounds the time spent in branch-and-cut after the root relaxation. Zero means no
	// limit. Purely continuous problems ignore it.
	Timeout time.Duration
	// MaxIterations bounds the number of branch-and-cut nodes solved.
	MaxIterations int
	// IncludeZeroVariables keeps variables with a zero value in Solution.Variables.
	IncludeZeroVariables bool
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Precision:     DefaultPrecision,
		MaxPivots:     DefaultMaxPivots,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate returns an error wrapping ErrInvalidOptions if some option is out of range.
func (o *Options) Validate() error {
	if math.IsNaN(o.Precision) || math.IsInf(o.Precision, 0) || o.Precision < 0 {
		return fmt.Errorf("%w: precision must be finite and non-negative, got %v", ErrInvalidOptions, o.Precision)
	}
	if o.MaxPivots <= 0 {
		return fmt.Errorf("%w: max pivots must be positive, got %v", ErrInvalidOptions, o.MaxPivots)
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be finite and non-negative, got %v", ErrInvalidOptions, o.Tolerance)
	}
	if o.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %v", ErrInvalidOptions, o.Timeout)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %v", ErrInvalidOptions, o.MaxIterations)
	}
	return nil
}
