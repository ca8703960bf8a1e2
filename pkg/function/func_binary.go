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
	"github.com/columnforge/vecengine/pkg/vectorize/power"
)

// generalBinaryFixed is the two-input counterpart of generalUnaryFixed.
// The preallocated result carries the union of both inputs' null sets,
// and null rows are never computed.
func generalBinaryFixed[T1, T2, R types.FixedSizeT](
	all func([]T1, []T2, []R) []R, one func(T1, T2) R,
) BuiltinFn {
	return func(ivecs []*vector.Vector, rvec *vector.Vector) error {
		xs := vector.MustFixedCol[T1](ivecs[0])
		ys := vector.MustFixedCol[T2](ivecs[1])
		rs := vector.MustFixedCol[R](rvec)
		if !nulls.Any(rvec.Nsp) {
			all(xs, ys, rs)
			return nil
		}
		for i := range xs {
			if !nulls.Contains(rvec.Nsp, uint64(i)) {
				rs[i] = one(xs[i], ys[i])
			}
		}
		return nil
	}
}

// powerFloat64Fn computes base ** exponent; the first operand is always
// the base.
func powerFloat64Fn() BuiltinFn {
	return generalBinaryFixed(power.PowerFloat64, math.Pow)
}
