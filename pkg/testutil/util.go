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

// Package testutil builds columns for tests.
package testutil

import (
	"github.com/columnforge/vecengine/pkg/container/nulls"
	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/container/vector"
)

func makeFixedVector[T types.FixedSizeT](typ types.Type, vals []T, nullRows []uint64) *vector.Vector {
	return vector.NewWithFixed(typ, vals, nulls.Build(nullRows...))
}

func MakeInt8Vector(vals []int8, nullRows []uint64) *vector.Vector {
	return makeFixedVector(types.T_int8.ToType(), vals, nullRows)
}

func MakeInt32Vector(vals []int32, nullRows []uint64) *vector.Vector {
	return makeFixedVector(types.T_int32.ToType(), vals, nullRows)
}

func MakeInt64Vector(vals []int64, nullRows []uint64) *vector.Vector {
	return makeFixedVector(types.T_int64.ToType(), vals, nullRows)
}

func MakeUint64Vector(vals []uint64, nullRows []uint64) *vector.Vector {
	return makeFixedVector(types.T_uint64.ToType(), vals, nullRows)
}

func MakeFloat32Vector(vals []float32, nullRows []uint64) *vector.Vector {
	return makeFixedVector(types.T_float32.ToType(), vals, nullRows)
}

func MakeFloat64Vector(vals []float64, nullRows []uint64) *vector.Vector {
	return makeFixedVector(types.T_float64.ToType(), vals, nullRows)
}

// MakeDecimal64Vector parses decimal literals at the given precision and
// scale; a malformed literal panics, tests feed constants.
func MakeDecimal64Vector(vals []string, precision, scale int32, nullRows []uint64) *vector.Vector {
	ds := make([]types.Decimal64, len(vals))
	for i, s := range vals {
		d, err := types.ParseDecimal64(s, precision, scale)
		if err != nil {
			panic(err)
		}
		ds[i] = d
	}
	return makeFixedVector(types.New(types.T_decimal64, precision, scale), ds, nullRows)
}

func MakeVarcharVector(vals []string, nullRows []uint64) *vector.Vector {
	bs := &types.Bytes{}
	for _, s := range vals {
		bs.Append([]byte(s))
	}
	return vector.NewWithBytes(types.T_varchar.ToType(), bs, nulls.Build(nullRows...))
}
