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

package atan

import "math"

var (
	atanFloat64 func([]float64, []float64) []float64
)

func init() {
	atanFloat64 = atanFloat64Pure
}

func AtanFloat64(xs, rs []float64) []float64 {
	return atanFloat64(xs, rs)
}

func atanFloat64Pure(xs, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = math.Atan(x)
	}
	return rs
}
