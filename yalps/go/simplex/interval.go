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

package simplex

import (
	"fmt"
	"math"
)

// Interval stores the closed interval `[Lower,Upper]`. Either side may be infinite. If `Lower`
// is greater than `Upper`, the interval is considered empty.
type Interval struct {
	Lower float64
	Upper float64
}

// FullInterval returns `(-inf,+inf)`.
func FullInterval() Interval {
	return Interval{math.Inf(-1), math.Inf(1)}
}

// NonNegative returns `[0,+inf)`, the default interval of a column.
func NonNegative() Interval {
	return Interval{0, math.Inf(1)}
}

// Point returns the singleton interval `[v,v]`.
func Point(v float64) Interval {
	return Interval{v, v}
}

// Intersect returns the intersection of `i` and `o`: the larger of the lower bounds and the
// smaller of the upper bounds. The result may be empty.
func (i Interval) Intersect(o Interval) Interval {
	return Interval{math.Max(i.Lower, o.Lower), math.Min(i.Upper, o.Upper)}
}

// IsEmpty returns true if no value lies in the interval.
func (i Interval) IsEmpty() bool {
	return i.Lower > i.Upper
}

// Contains reports whether `v` lies in the interval, allowing a slack of `tol` on both sides.
func (i Interval) Contains(v, tol float64) bool {
	return v >= i.Lower-tol && v <= i.Upper+tol
}

// HasLower returns true if the lower side is finite.
func (i Interval) HasLower() bool {
	return !math.IsInf(i.Lower, -1)
}

// HasUpper returns true if the upper side is finite.
func (i Interval) HasUpper() bool {
	return !math.IsInf(i.Upper, 1)
}

// String returns the interval as `[lower,upper]`.
func (i Interval) String() string {
	return fmt.Sprintf("[%v,%v]", i.Lower, i.Upper)
}
