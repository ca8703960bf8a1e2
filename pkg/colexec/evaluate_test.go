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

package colexec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/container/nulls"
	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/container/vector"
	"github.com/columnforge/vecengine/pkg/testutil"
)

func TestEvaluateUnary(t *testing.T) {
	in := testutil.MakeFloat64Vector([]float64{4, 9, 16}, nil)
	out, err := Evaluate("sqrt", []*vector.Vector{in})
	require.NoError(t, err)
	require.Equal(t, 3, out.Length())
	require.Equal(t, []float64{2, 3, 4}, vector.MustFixedCol[float64](out))
	require.False(t, nulls.Any(out.Nsp))
}

func TestEvaluateNullPropagation(t *testing.T) {
	// row 1 is null; its payload slot holds -4 so any computed value
	// would surface as NaN
	in := testutil.MakeFloat64Vector([]float64{4, -4, 16}, []uint64{1})
	out, err := Evaluate("sqrt", []*vector.Vector{in})
	require.NoError(t, err)

	require.Equal(t, 3, out.Length())
	require.True(t, nulls.Contains(out.Nsp, 1))
	require.Equal(t, 1, nulls.Length(out.Nsp))

	rs := vector.MustFixedCol[float64](out)
	require.Equal(t, 2.0, rs[0])
	require.Equal(t, 4.0, rs[2])
	// the null row was skipped, not computed
	require.Equal(t, 0.0, rs[1])
	require.False(t, math.IsNaN(rs[1]))

	// the input's null set is untouched
	require.Equal(t, []uint64{1}, in.Nsp.ToArray())
}

func TestEvaluateDomainErrorsAreValues(t *testing.T) {
	in := testutil.MakeFloat64Vector([]float64{-1, 0}, nil)
	out, err := Evaluate("ln", []*vector.Vector{in})
	require.NoError(t, err)
	rs := vector.MustFixedCol[float64](out)
	require.True(t, math.IsNaN(rs[0]))
	require.True(t, math.IsInf(rs[1], -1))
	require.False(t, nulls.Any(out.Nsp))
}

func TestEvaluateFloorCeilFloat(t *testing.T) {
	in := testutil.MakeFloat64Vector([]float64{3.7, -3.7}, nil)

	out, err := Evaluate("floor", []*vector.Vector{in})
	require.NoError(t, err)
	require.Equal(t, types.T_int64, out.Typ.Oid)
	require.Equal(t, []int64{3, -4}, vector.MustFixedCol[int64](out))

	out, err = Evaluate("ceil", []*vector.Vector{in})
	require.NoError(t, err)
	require.Equal(t, types.T_int64, out.Typ.Oid)
	require.Equal(t, []int64{4, -3}, vector.MustFixedCol[int64](out))
}

func TestEvaluateFloorDecimal(t *testing.T) {
	in := testutil.MakeDecimal64Vector([]string{"3.70", "-3.70"}, 10, 2, nil)
	out, err := Evaluate("floor", []*vector.Vector{in})
	require.NoError(t, err)

	require.Equal(t, types.T_decimal64, out.Typ.Oid)
	require.Equal(t, int32(9), out.Typ.Precision)
	require.Equal(t, int32(0), out.Typ.Scale)
	require.Equal(t,
		[]types.Decimal64{3, -4},
		vector.MustFixedCol[types.Decimal64](out))
}

func TestEvaluateFloorCeilSaturates(t *testing.T) {
	in := testutil.MakeFloat64Vector(
		[]float64{1e30, math.Inf(1), -1e30, math.Inf(-1), math.NaN()}, nil)

	for _, op := range []string{"floor", "ceil"} {
		out, err := Evaluate(op, []*vector.Vector{in})
		require.NoError(t, err)
		require.Equal(t, []int64{
			math.MaxInt64, math.MaxInt64, math.MinInt64, math.MinInt64, 0,
		}, vector.MustFixedCol[int64](out), op)
	}

	// the per-row path taken when a null is present saturates too
	withNull := testutil.MakeFloat64Vector([]float64{1e30, 0, -1e30}, []uint64{1})
	out, err := Evaluate("floor", []*vector.Vector{withNull})
	require.NoError(t, err)
	rs := vector.MustFixedCol[int64](out)
	require.Equal(t, int64(math.MaxInt64), rs[0])
	require.Equal(t, int64(math.MinInt64), rs[2])
	require.True(t, nulls.Contains(out.Nsp, 1))
}

func TestEvaluateFloat64Unaries(t *testing.T) {
	cases := []struct {
		op   string
		want func(float64) float64
	}{
		{"acos", math.Acos},
		{"asin", math.Asin},
		{"atan", math.Atan},
		{"cbrt", math.Cbrt},
		{"cos", math.Cos},
		{"cot", func(x float64) float64 { return 1 / math.Tan(x) }},
		{"exp", math.Exp},
		{"ln", math.Log},
		{"log2", math.Log2},
		{"log10", math.Log10},
		{"sin", math.Sin},
		{"sqrt", math.Sqrt},
		{"tan", math.Tan},
	}
	xs := []float64{0.25, 0.5, 1, 2}
	for _, c := range cases {
		// no nulls: the slice kernel runs
		out, err := Evaluate(c.op, []*vector.Vector{testutil.MakeFloat64Vector(xs, nil)})
		require.NoError(t, err, c.op)
		rs := vector.MustFixedCol[float64](out)
		for i, x := range xs {
			require.Equal(t, math.Float64bits(c.want(x)), math.Float64bits(rs[i]),
				"%s(%v)", c.op, x)
		}

		// with a null: the per-row path must agree on the live rows
		out, err = Evaluate(c.op, []*vector.Vector{testutil.MakeFloat64Vector(xs, []uint64{2})})
		require.NoError(t, err, c.op)
		rs = vector.MustFixedCol[float64](out)
		require.Equal(t, math.Float64bits(c.want(xs[0])), math.Float64bits(rs[0]), c.op)
		require.Equal(t, math.Float64bits(c.want(xs[3])), math.Float64bits(rs[3]), c.op)
		require.True(t, nulls.Contains(out.Nsp, 2), c.op)
	}
}

func TestEvaluateFloorInt(t *testing.T) {
	in := testutil.MakeInt64Vector([]int64{-5, 12}, nil)
	out, err := Evaluate("floor", []*vector.Vector{in})
	require.NoError(t, err)
	require.Equal(t, types.T_int64, out.Typ.Oid)
	require.Equal(t, []int64{-5, 12}, vector.MustFixedCol[int64](out))
}

func TestEvaluatePowerOperandOrder(t *testing.T) {
	two := testutil.MakeFloat64Vector([]float64{2}, nil)
	three := testutil.MakeFloat64Vector([]float64{3}, nil)

	out, err := Evaluate("power", []*vector.Vector{two, three})
	require.NoError(t, err)
	require.Equal(t, []float64{8}, vector.MustFixedCol[float64](out))

	out, err = Evaluate("power", []*vector.Vector{three, two})
	require.NoError(t, err)
	require.Equal(t, []float64{9}, vector.MustFixedCol[float64](out))
}

func TestEvaluatePowerNullPropagation(t *testing.T) {
	base := testutil.MakeFloat64Vector([]float64{2, 2, 2}, []uint64{0})
	exp := testutil.MakeFloat64Vector([]float64{3, 3, 3}, []uint64{2})

	out, err := Evaluate("power", []*vector.Vector{base, exp})
	require.NoError(t, err)
	require.True(t, nulls.Contains(out.Nsp, 0))
	require.True(t, nulls.Contains(out.Nsp, 2))
	require.False(t, nulls.Contains(out.Nsp, 1))
	require.Equal(t, 8.0, vector.MustFixedCol[float64](out)[1])
}

func TestEvaluateImplicitWidening(t *testing.T) {
	in := testutil.MakeInt32Vector([]int32{0, 1}, nil)
	out, err := Evaluate("exp", []*vector.Vector{in})
	require.NoError(t, err)
	require.Equal(t, types.T_float64, out.Typ.Oid)
	rs := vector.MustFixedCol[float64](out)
	require.Equal(t, 1.0, rs[0])
	require.Equal(t, math.E, rs[1])
}

func TestEvaluateErrors(t *testing.T) {
	in := testutil.MakeFloat64Vector([]float64{1}, nil)

	_, err := Evaluate("NOSUCHOP", []*vector.Vector{in})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnknownOperation))

	str := testutil.MakeVarcharVector([]string{"x"}, nil)
	_, err = Evaluate("acos", []*vector.Vector{str})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrTypeMismatch))

	long := testutil.MakeFloat64Vector([]float64{1, 2, 3}, nil)
	_, err = Evaluate("power", []*vector.Vector{in, long})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrLengthMismatch))
}

func TestEvaluateIdempotent(t *testing.T) {
	in := testutil.MakeFloat64Vector([]float64{0.25, -1, 2, 100}, []uint64{3})

	first, err := Evaluate("ln", []*vector.Vector{in})
	require.NoError(t, err)
	second, err := Evaluate("ln", []*vector.Vector{in})
	require.NoError(t, err)

	a := vector.MustFixedCol[float64](first)
	b := vector.MustFixedCol[float64](second)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]), "row %d", i)
	}
	require.True(t, first.Nsp.IsSame(second.Nsp))
}

func BenchmarkEvaluateSqrt(b *testing.B) {
	xs := make([]float64, 8192)
	for i := range xs {
		xs[i] = float64(i)
	}
	in := testutil.MakeFloat64Vector(xs, nil)
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate("sqrt", []*vector.Vector{in}); err != nil {
			b.Fail()
		}
	}
}
