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

package function

import (
	"math"

	"github.com/columnforge/vecengine/pkg/container/nulls"
	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/container/vector"
	"github.com/columnforge/vecengine/pkg/vectorize/abs"
	"github.com/columnforge/vecengine/pkg/vectorize/ceil"
	"github.com/columnforge/vecengine/pkg/vectorize/floor"
	"github.com/columnforge/vecengine/pkg/vectorize/typecast"
)

// generalUnaryFixed lifts a pair of kernels into a BuiltinFn. When the
// result has no nulls the whole column goes through the slice kernel;
// otherwise rows in the null set are skipped, so no value is ever
// computed from a null input.
func generalUnaryFixed[T, R types.FixedSizeT](all func([]T, []R) []R, one func(T) R) BuiltinFn {
	return func(ivecs []*vector.Vector, rvec *vector.Vector) error {
		xs := vector.MustFixedCol[T](ivecs[0])
		rs := vector.MustFixedCol[R](rvec)
		if !nulls.Any(rvec.Nsp) {
			all(xs, rs)
			return nil
		}
		for i := range xs {
			if !nulls.Contains(rvec.Nsp, uint64(i)) {
				rs[i] = one(xs[i])
			}
		}
		return nil
	}
}

// cotFloat64 is the scalar cotangent; domain errors surface as NaN or
// ±Inf in the result, never as a Go error.
func cotFloat64(x float64) float64 {
	return 1 / math.Tan(x)
}

func absInt64Fn() BuiltinFn {
	return generalUnaryFixed(abs.AbsInt64, func(x int64) int64 {
		if x < 0 {
			return -x
		}
		return x
	})
}

func absUint64Fn() BuiltinFn {
	return generalUnaryFixed(abs.AbsUint64, func(x uint64) uint64 { return x })
}

func absFloat64Fn() BuiltinFn {
	return generalUnaryFixed(abs.AbsFloat64, math.Abs)
}

func floorInt64Fn() BuiltinFn {
	return generalUnaryFixed(floor.FloorInt64, func(x int64) int64 { return x })
}

func floorUint64Fn() BuiltinFn {
	return generalUnaryFixed(floor.FloorUint64, func(x uint64) uint64 { return x })
}

func floorFloat64Fn() BuiltinFn {
	return generalUnaryFixed(floor.FloorFloat64, func(x float64) int64 {
		return typecast.Float64ToInt64(math.Floor(x))
	})
}

func ceilInt64Fn() BuiltinFn {
	return generalUnaryFixed(ceil.CeilInt64, func(x int64) int64 { return x })
}

func ceilUint64Fn() BuiltinFn {
	return generalUnaryFixed(ceil.CeilUint64, func(x uint64) uint64 { return x })
}

func ceilFloat64Fn() BuiltinFn {
	return generalUnaryFixed(ceil.CeilFloat64, func(x float64) int64 {
		return typecast.Float64ToInt64(math.Ceil(x))
	})
}

// floorDecimal64Fn reads the input scale from the column type, so it
// cannot go through generalUnaryFixed.
func floorDecimal64Fn(ivecs []*vector.Vector, rvec *vector.Vector) error {
	scale := ivecs[0].Typ.Scale
	xs := vector.MustFixedCol[types.Decimal64](ivecs[0])
	rs := vector.MustFixedCol[types.Decimal64](rvec)
	if !nulls.Any(rvec.Nsp) {
		floor.FloorDecimal64(xs, rs, scale)
		return nil
	}
	for i := range xs {
		if !nulls.Contains(rvec.Nsp, uint64(i)) {
			rs[i] = xs[i].Floor(scale)
		}
	}
	return nil
}

func ceilDecimal64Fn(ivecs []*vector.Vector, rvec *vector.Vector) error {
	scale := ivecs[0].Typ.Scale
	xs := vector.MustFixedCol[types.Decimal64](ivecs[0])
	rs := vector.MustFixedCol[types.Decimal64](rvec)
	if !nulls.Any(rvec.Nsp) {
		ceil.CeilDecimal64(xs, rs, scale)
		return nil
	}
	for i := range xs {
		if !nulls.Contains(rvec.Nsp, uint64(i)) {
			rs[i] = xs[i].Ceil(scale)
		}
	}
	return nil
}

// floorCeilDecimalReturnType implements the decimal leg of the floor/ceil
// type dispatch: the output is decimal(p-s+1, 0), one digit more than the
// input's integral part so the result can absorb the carry without
// overflow, clamped at the 64-bit decimal limit.
func floorCeilDecimalReturnType(args []types.Type) types.Type {
	in := args[0]
	precision := in.Precision - in.Scale + 1
	if precision > types.Decimal64MaxPrecision {
		precision = types.Decimal64MaxPrecision
	}
	return types.New(types.T_decimal64, precision, 0)
}
