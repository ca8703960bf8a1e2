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

// Package ceil provides the ceil kernels, the mirror image of floor:
// rounding is toward positive infinity, the type dispatch and the
// saturating double leg are identical.
package ceil

import (
	"math"

	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/vectorize/typecast"
)

var (
	CeilInt64     func([]int64, []int64) []int64
	CeilUint64    func([]uint64, []uint64) []uint64
	CeilFloat64   func([]float64, []int64) []int64
	CeilDecimal64 func([]types.Decimal64, []types.Decimal64, int32) []types.Decimal64
)

func init() {
	CeilInt64 = ceilInt64
	CeilUint64 = ceilUint64
	CeilFloat64 = ceilFloat64
	CeilDecimal64 = ceilDecimal64
}

func ceilInt64(xs, rs []int64) []int64 {
	copy(rs, xs)
	return rs
}

func ceilUint64(xs, rs []uint64) []uint64 {
	copy(rs, xs)
	return rs
}

func ceilFloat64(xs []float64, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = typecast.Float64ToInt64(math.Ceil(x))
	}
	return rs
}

func ceilDecimal64(xs, rs []types.Decimal64, scale int32) []types.Decimal64 {
	for i, x := range xs {
		rs[i] = x.Ceil(scale)
	}
	return rs
}
