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

package power

import "math"

var (
	powerFloat64 func([]float64, []float64, []float64) []float64
)

func init() {
	powerFloat64 = powerFloat64Pure
}

// PowerFloat64 computes xs[i] ** ys[i]. The first operand is the base.
func PowerFloat64(xs, ys, rs []float64) []float64 {
	return powerFloat64(xs, ys, rs)
}

func powerFloat64Pure(xs, ys, rs []float64) []float64 {
	for i := range xs {
		rs[i] = math.Pow(xs[i], ys[i])
	}
	return rs
}
