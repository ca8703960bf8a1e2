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

package abs

import (
	"math"

	"golang.org/x/exp/constraints"
)

var (
	AbsInt64   func([]int64, []int64) []int64
	AbsUint64  func([]uint64, []uint64) []uint64
	AbsFloat64 func([]float64, []float64) []float64
)

func init() {
	AbsInt64 = absSigned[int64]
	AbsUint64 = absUnsigned[uint64]
	AbsFloat64 = absFloat64
}

// absSigned keeps math.MinInt64 as-is: there is no positive counterpart,
// and two's complement negation would return it unchanged anyway.
func absSigned[T constraints.Signed](xs, rs []T) []T {
	for i, x := range xs {
		if x < 0 {
			x = -x
		}
		rs[i] = x
	}
	return rs
}

func absUnsigned[T constraints.Unsigned](xs, rs []T) []T {
	copy(rs, xs)
	return rs
}

func absFloat64(xs, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = math.Abs(x)
	}
	return rs
}
