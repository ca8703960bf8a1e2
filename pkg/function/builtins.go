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

	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/vectorize/acos"
	"github.com/columnforge/vecengine/pkg/vectorize/asin"
	"github.com/columnforge/vecengine/pkg/vectorize/atan"
	"github.com/columnforge/vecengine/pkg/vectorize/cbrt"
	"github.com/columnforge/vecengine/pkg/vectorize/cos"
	"github.com/columnforge/vecengine/pkg/vectorize/cot"
	"github.com/columnforge/vecengine/pkg/vectorize/exp"
	"github.com/columnforge/vecengine/pkg/vectorize/ln"
	"github.com/columnforge/vecengine/pkg/vectorize/log10"
	"github.com/columnforge/vecengine/pkg/vectorize/log2"
	"github.com/columnforge/vecengine/pkg/vectorize/sin"
	"github.com/columnforge/vecengine/pkg/vectorize/sqrt"
	"github.com/columnforge/vecengine/pkg/vectorize/tan"
)

// function ids
const (
	ABS int32 = iota
	ACOS
	ASIN
	ATAN
	CBRT
	CEIL
	COS
	COT
	EXP
	FLOOR
	LN
	LOG2
	LOG10
	POWER
	SIN
	SQRT
	TAN
)

// aliases resolve to the same overload set as their target name.
var aliases = map[string]string{
	"ceiling": "ceil",
	"log":     "ln",
	"pow":     "power",
}

// builtins is the full operation catalog. One entry per name; overload
// order matters only for tie-breaking in the type check.
var builtins = map[string]Functions{
	"abs": {
		Id:          ABS,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_int64}, ReturnTyp: types.T_int64, Fn: absInt64Fn()},
			{Index: 1, Args: []types.T{types.T_uint64}, ReturnTyp: types.T_uint64, Fn: absUint64Fn()},
			{Index: 2, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: absFloat64Fn()},
		},
	},
	"acos": {
		Id:          ACOS,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(acos.AcosFloat64, math.Acos)},
		},
	},
	"asin": {
		Id:          ASIN,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(asin.AsinFloat64, math.Asin)},
		},
	},
	"atan": {
		Id:          ATAN,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(atan.AtanFloat64, math.Atan)},
		},
	},
	"cbrt": {
		Id:          CBRT,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(cbrt.CbrtFloat64, math.Cbrt)},
		},
	},
	"ceil": {
		Id:          CEIL,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_int64}, ReturnTyp: types.T_int64, Fn: ceilInt64Fn()},
			{Index: 1, Args: []types.T{types.T_uint64}, ReturnTyp: types.T_uint64, Fn: ceilUint64Fn()},
			{Index: 2, Args: []types.T{types.T_float64}, ReturnTyp: types.T_int64, Fn: ceilFloat64Fn()},
			{Index: 3, Args: []types.T{types.T_decimal64}, ReturnTyp: types.T_decimal64,
				FlexibleReturnType: floorCeilDecimalReturnType, Fn: ceilDecimal64Fn},
		},
	},
	"cos": {
		Id:          COS,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(cos.CosFloat64, math.Cos)},
		},
	},
	"cot": {
		Id:          COT,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64,
				Fn: generalUnaryFixed(cot.CotFloat64, cotFloat64)},
		},
	},
	"exp": {
		Id:          EXP,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(exp.ExpFloat64, math.Exp)},
		},
	},
	"floor": {
		Id:          FLOOR,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_int64}, ReturnTyp: types.T_int64, Fn: floorInt64Fn()},
			{Index: 1, Args: []types.T{types.T_uint64}, ReturnTyp: types.T_uint64, Fn: floorUint64Fn()},
			{Index: 2, Args: []types.T{types.T_float64}, ReturnTyp: types.T_int64, Fn: floorFloat64Fn()},
			{Index: 3, Args: []types.T{types.T_decimal64}, ReturnTyp: types.T_decimal64,
				FlexibleReturnType: floorCeilDecimalReturnType, Fn: floorDecimal64Fn},
		},
	},
	"ln": {
		Id:          LN,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(ln.LnFloat64, math.Log)},
		},
	},
	"log2": {
		Id:          LOG2,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(log2.Log2Float64, math.Log2)},
		},
	},
	"log10": {
		Id:          LOG10,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(log10.Log10Float64, math.Log10)},
		},
	},
	"power": {
		Id:          POWER,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64, types.T_float64}, ReturnTyp: types.T_float64, Fn: powerFloat64Fn()},
		},
	},
	"sin": {
		Id:          SIN,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(sin.SinFloat64, math.Sin)},
		},
	},
	"sqrt": {
		Id:          SQRT,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(sqrt.SqrtFloat64, math.Sqrt)},
		},
	},
	"tan": {
		Id:          TAN,
		TypeCheckFn: normalTypeCheck,
		Overloads: []Function{
			{Index: 0, Args: []types.T{types.T_float64}, ReturnTyp: types.T_float64, Fn: generalUnaryFixed(tan.TanFloat64, math.Tan)},
		},
	},
}
