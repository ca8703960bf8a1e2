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

// Package vector implements the column container of the engine.
//
// A Vector is immutable once built: evaluation never edits an input
// column, it allocates a fresh output column. That convention is what
// makes concurrent evaluation safe without any locking.
package vector

import (
	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/container/nulls"
	"github.com/columnforge/vecengine/pkg/container/types"
)

// Vector represents one column of a batch.
type Vector struct {
	Typ types.Type

	// Col is the backing storage: a []T for fixed-size types,
	// *types.Bytes for strings.
	Col any

	// Nsp is the set of null rows.
	Nsp *nulls.Nulls
}

// New returns an empty vector of the given type.
func New(typ types.Type) *Vector {
	return &Vector{
		Typ: typ,
		Nsp: nulls.New(),
	}
}

// NewWithFixed wraps an existing slice of fixed-size values. The slice is
// adopted, not copied; the caller must not mutate it afterwards.
func NewWithFixed[T types.FixedSizeT](typ types.Type, vals []T, nsp *nulls.Nulls) *Vector {
	if nsp == nil {
		nsp = nulls.New()
	}
	return &Vector{
		Typ: typ,
		Col: vals,
		Nsp: nsp,
	}
}

// NewWithBytes wraps an existing string column.
func NewWithBytes(typ types.Type, bs *types.Bytes, nsp *nulls.Nulls) *Vector {
	if nsp == nil {
		nsp = nulls.New()
	}
	return &Vector{
		Typ: typ,
		Col: bs,
		Nsp: nsp,
	}
}

// PreAlloc returns a vector of the given type with n zero values, used by
// the evaluator to hold an operation's output.
func PreAlloc(typ types.Type, n int) (*Vector, error) {
	vec := New(typ)
	switch typ.Oid {
	case types.T_bool:
		vec.Col = make([]bool, n)
	case types.T_int8:
		vec.Col = make([]int8, n)
	case types.T_int16:
		vec.Col = make([]int16, n)
	case types.T_int32:
		vec.Col = make([]int32, n)
	case types.T_int64:
		vec.Col = make([]int64, n)
	case types.T_uint8:
		vec.Col = make([]uint8, n)
	case types.T_uint16:
		vec.Col = make([]uint16, n)
	case types.T_uint32:
		vec.Col = make([]uint32, n)
	case types.T_uint64:
		vec.Col = make([]uint64, n)
	case types.T_float32:
		vec.Col = make([]float32, n)
	case types.T_float64:
		vec.Col = make([]float64, n)
	case types.T_decimal64:
		vec.Col = make([]types.Decimal64, n)
	default:
		return nil, moerr.NewInternal("cannot allocate a vector of type %s", typ.Oid.OidString())
	}
	return vec, nil
}

// MustFixedCol returns the backing slice of a fixed-size vector.
// It panics when T does not match the vector's type; callers go through
// the registry's type check first, which guarantees the match.
func MustFixedCol[T types.FixedSizeT](v *Vector) []T {
	return v.Col.([]T)
}

// MustBytesCol returns the backing storage of a string vector.
func MustBytesCol(v *Vector) *types.Bytes {
	return v.Col.(*types.Bytes)
}

// Length returns the row count of the vector.
func (v *Vector) Length() int {
	switch col := v.Col.(type) {
	case nil:
		return 0
	case []bool:
		return len(col)
	case []int8:
		return len(col)
	case []int16:
		return len(col)
	case []int32:
		return len(col)
	case []int64:
		return len(col)
	case []uint8:
		return len(col)
	case []uint16:
		return len(col)
	case []uint32:
		return len(col)
	case []uint64:
		return len(col)
	case []float32:
		return len(col)
	case []float64:
		return len(col)
	case []types.Decimal64:
		return len(col)
	case *types.Bytes:
		return col.Len()
	}
	return 0
}

// GetType returns the type of the vector.
func (v *Vector) GetType() types.Type {
	return v.Typ
}

// GetNulls returns the null set of the vector.
func (v *Vector) GetNulls() *nulls.Nulls {
	return v.Nsp
}
