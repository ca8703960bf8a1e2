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

package types

import "fmt"

// T is the logical type oid of a column.
type T uint8

const (
	// T_any is a wildcard that matches every concrete type.
	T_any T = iota

	T_bool

	// signed integers
	T_int8
	T_int16
	T_int32
	T_int64

	// unsigned integers
	T_uint8
	T_uint16
	T_uint32
	T_uint64

	// ieee-754 floating point
	T_float32
	T_float64

	// fixed-point decimal, at most 18 digits of precision
	T_decimal64

	// variable length strings
	T_char
	T_varchar
)

// Type describes the concrete type of a column: its oid plus the
// precision/scale pair for decimals. Size is the byte width of one value
// for fixed-size types, 0 for variable-length types.
type Type struct {
	Oid T

	Size int32

	Precision int32
	Scale     int32
}

// New constructs a Type with an explicit precision and scale.
// For non-decimal oids the two are carried but ignored.
func New(oid T, precision, scale int32) Type {
	typ := oid.ToType()
	typ.Precision = precision
	typ.Scale = scale
	return typ
}

// FixedSizeT is the constraint for values stored directly in a column's
// backing slice, one fixed-width element per row.
type FixedSizeT interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | Decimal64
}

// ToType returns the default Type of an oid.
func (t T) ToType() Type {
	var typ Type

	typ.Oid = t
	switch t {
	case T_bool, T_int8, T_uint8:
		typ.Size = 1
	case T_int16, T_uint16:
		typ.Size = 2
	case T_int32, T_uint32, T_float32:
		typ.Size = 4
	case T_int64, T_uint64, T_float64:
		typ.Size = 8
	case T_decimal64:
		typ.Size = 8
		typ.Precision = Decimal64MaxPrecision
	case T_char, T_varchar:
		typ.Size = 0
	}
	return typ
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_bool:
		return "BOOL"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_uint8:
		return "TINYINT UNSIGNED"
	case T_uint16:
		return "SMALLINT UNSIGNED"
	case T_uint32:
		return "INT UNSIGNED"
	case T_uint64:
		return "BIGINT UNSIGNED"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_decimal64:
		return "DECIMAL"
	case T_char:
		return "CHAR"
	case T_varchar:
		return "VARCHAR"
	}
	return fmt.Sprintf("unexpected type oid %d", t)
}

// OidString returns the Go-side name of the oid, used in error messages
// and explain output.
func (t T) OidString() string {
	switch t {
	case T_any:
		return "T_any"
	case T_bool:
		return "T_bool"
	case T_int8:
		return "T_int8"
	case T_int16:
		return "T_int16"
	case T_int32:
		return "T_int32"
	case T_int64:
		return "T_int64"
	case T_uint8:
		return "T_uint8"
	case T_uint16:
		return "T_uint16"
	case T_uint32:
		return "T_uint32"
	case T_uint64:
		return "T_uint64"
	case T_float32:
		return "T_float32"
	case T_float64:
		return "T_float64"
	case T_decimal64:
		return "T_decimal64"
	case T_char:
		return "T_char"
	case T_varchar:
		return "T_varchar"
	}
	return "unknown_type"
}

func (t T) IsSignedInt() bool {
	return t == T_int8 || t == T_int16 || t == T_int32 || t == T_int64
}

func (t T) IsUnsignedInt() bool {
	return t == T_uint8 || t == T_uint16 || t == T_uint32 || t == T_uint64
}

func (t T) IsInteger() bool {
	return t.IsSignedInt() || t.IsUnsignedInt()
}

func (t T) IsFloat() bool {
	return t == T_float32 || t == T_float64
}

func (t T) IsDecimal() bool {
	return t == T_decimal64
}

func (t T) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat() || t.IsDecimal()
}

func (t T) IsString() bool {
	return t == T_char || t == T_varchar
}

// FixedLength reports whether values of this oid occupy a fixed number of
// bytes per row.
func (t T) FixedLength() bool {
	return !t.IsString() && t != T_any
}

func (t Type) TypeSize() int {
	return int(t.Size)
}

func (t Type) String() string {
	if t.Oid == T_decimal64 {
		return fmt.Sprintf("DECIMAL(%d, %d)", t.Precision, t.Scale)
	}
	return t.Oid.String()
}

// Eq reports whether two types are the same concrete type, including the
// precision/scale pair for decimals.
func (t Type) Eq(other Type) bool {
	if t.Oid != other.Oid {
		return false
	}
	if t.Oid == T_decimal64 {
		return t.Precision == other.Precision && t.Scale == other.Scale
	}
	return true
}
