// Copyright 2023 ColumnForge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package typecast holds the widening kernels behind implicit casts.
// Only lossless widenings live here; narrowing conversions are rejected
// earlier, by the type check.
package typecast

import (
	"math"

	"github.com/columnforge/vecengine/pkg/container/types"
	"golang.org/x/exp/constraints"
)

// int64Bound is 2^63, the first float64 past the int64 range.
const int64Bound float64 = 1 << 63

// NumericToNumeric converts between fixed-size numeric representations.
func NumericToNumeric[T1, T2 constraints.Integer | constraints.Float](xs []T1, rs []T2) []T2 {
	for i, x := range xs {
		rs[i] = T2(x)
	}
	return rs
}

// IntToDecimal64 widens integers into scale-0 decimals.
func IntToDecimal64[T constraints.Integer](xs []T, rs []types.Decimal64) []types.Decimal64 {
	for i, x := range xs {
		rs[i] = types.Decimal64FromInt64(int64(x))
	}
	return rs
}

// Float64ToInt64 narrows with saturation: values at or beyond the int64
// range clamp to MaxInt64/MinInt64, NaN maps to 0. A bare Go conversion
// of an out-of-range float is implementation-dependent and on amd64
// collapses every overflow to MinInt64, wrong-signed for positive inputs.
func Float64ToInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= int64Bound:
		return math.MaxInt64
	case x < -int64Bound:
		return math.MinInt64
	}
	return int64(x)
}
