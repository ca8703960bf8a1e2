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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowerFloat64(t *testing.T) {
	xs := []float64{2, 3, 10, 4}
	ys := []float64{3, 2, 0, 0.5}
	rs := make([]float64, len(xs))
	PowerFloat64(xs, ys, rs)
	require.Equal(t, []float64{8, 9, 1, 2}, rs)
}

func TestPowerFloat64Domain(t *testing.T) {
	// a negative base with a fractional exponent is NaN, not an error
	rs := make([]float64, 1)
	PowerFloat64([]float64{-8}, []float64{0.5}, rs)
	require.True(t, math.IsNaN(rs[0]))
}

func BenchmarkPowerFloat64(b *testing.B) {
	xs := make([]float64, 8192)
	ys := make([]float64, 8192)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 2
	}
	rs := make([]float64, 8192)
	for i := 0; i < b.N; i++ {
		PowerFloat64(xs, ys, rs)
	}
}
