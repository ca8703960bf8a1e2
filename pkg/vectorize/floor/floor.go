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

// Package floor provides the floor kernels. Floor is polymorphic over its
// input type:
//
//	floor(double)        -> bigint
//	floor(decimal(p, s)) -> decimal(p-s+1, 0)
//	floor(bigint)        -> bigint (identity)
//
// The double leg saturates: inputs past the bigint range clamp to
// MaxInt64/MinInt64 and NaN maps to 0.
//
// Kernels are bound through package vars so an accelerated implementation
// can be substituted at init time.
package floor

import (
	"math"

	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/vectorize/typecast"
)

var (
	FloorInt64     func([]int64, []int64) []int64
	FloorUint64    func([]uint64, []uint64) []uint64
	FloorFloat64   func([]float64, []int64) []int64
	FloorDecimal64 func([]types.Decimal64, []types.Decimal64, int32) []types.Decimal64
)

func init() {
	FloorInt64 = floorInt64
	FloorUint64 = floorUint64
	FloorFloat64 = floorFloat64
	FloorDecimal64 = floorDecimal64
}

func floorInt64(xs, rs []int64) []int64 {
	copy(rs, xs)
	return rs
}

func floorUint64(xs, rs []uint64) []uint64 {
	copy(rs, xs)
	return rs
}

func floorFloat64(xs []float64, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = typecast.Float64ToInt64(math.Floor(x))
	}
	return rs
}

func floorDecimal64(xs, rs []types.Decimal64, scale int32) []types.Decimal64 {
	for i, x := range xs {
		rs[i] = x.Floor(scale)
	}
	return rs
}
