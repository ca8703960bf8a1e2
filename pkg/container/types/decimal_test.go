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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDecimal64(t *testing.T) {
	d, err := ParseDecimal64("123.45", 10, 2)
	require.NoError(t, err)
	require.Equal(t, Decimal64(12345), d)

	d, err = ParseDecimal64("-123.45", 10, 2)
	require.NoError(t, err)
	require.Equal(t, Decimal64(-12345), d)

	d, err = ParseDecimal64("-0.5", 10, 1)
	require.NoError(t, err)
	require.Equal(t, Decimal64(-5), d)

	d, err = ParseDecimal64("42", 10, 3)
	require.NoError(t, err)
	require.Equal(t, Decimal64(42000), d)

	// more fractional digits than the scale allows
	_, err = ParseDecimal64("1.234", 10, 2)
	require.Error(t, err)

	_, err = ParseDecimal64("abc", 10, 2)
	require.Error(t, err)

	_, err = ParseDecimal64("1", 20, 2)
	require.Error(t, err)
}

func TestDecimal64FloorCeil(t *testing.T) {
	cases := []struct {
		in    string
		scale int32
		floor Decimal64
		ceil  Decimal64
	}{
		{"3.70", 2, 3, 4},
		{"-3.70", 2, -4, -3},
		{"5.00", 2, 5, 5},
		{"-5.00", 2, -5, -5},
		{"0.01", 2, 0, 1},
		{"-0.01", 2, -1, 0},
		{"7", 0, 7, 7},
	}
	for _, c := range cases {
		d, err := ParseDecimal64(c.in, 10, c.scale)
		require.NoError(t, err)
		require.Equal(t, c.floor, d.Floor(c.scale), "floor(%s)", c.in)
		require.Equal(t, c.ceil, d.Ceil(c.scale), "ceil(%s)", c.in)
	}
}

func TestDecimal64Format(t *testing.T) {
	d, err := ParseDecimal64("123.45", 10, 2)
	require.NoError(t, err)
	require.Equal(t, "123.45", d.Format(2))

	d, err = ParseDecimal64("-0.05", 10, 2)
	require.NoError(t, err)
	require.Equal(t, "-0.05", d.Format(2))

	require.Equal(t, "42", Decimal64FromInt64(42).Format(0))
}

func TestDecimal64ToFloat64(t *testing.T) {
	d, err := ParseDecimal64("2.50", 10, 2)
	require.NoError(t, err)
	require.Equal(t, 2.5, Decimal64ToFloat64(d, 2))
}

func TestCompareDecimal64(t *testing.T) {
	require.Equal(t, -1, CompareDecimal64(1, 2))
	require.Equal(t, 0, CompareDecimal64(2, 2))
	require.Equal(t, 1, CompareDecimal64(3, 2))
}
