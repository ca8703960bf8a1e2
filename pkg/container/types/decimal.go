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
	"fmt"
	"strconv"
	"strings"
)

// Decimal64 is a fixed-point decimal stored as a scaled 64-bit integer.
// The scale lives in the column Type, not in the value: a Decimal64 of
// 12345 in a DECIMAL(10, 2) column denotes 123.45.
type Decimal64 int64

// Decimal64MaxPrecision is the largest number of significant digits a
// Decimal64 can carry.
const Decimal64MaxPrecision = 18

// decimal64ScaleTable[i] is 10^i.
var decimal64ScaleTable = [Decimal64MaxPrecision + 1]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

// Decimal64FromInt64 returns v as a scale-0 decimal.
func Decimal64FromInt64(v int64) Decimal64 {
	return Decimal64(v)
}

// Decimal64ToFloat64 converts x at the given scale to a float64.
func Decimal64ToFloat64(x Decimal64, scale int32) float64 {
	return float64(x) / float64(decimal64ScaleTable[scale])
}

// ParseDecimal64 parses a decimal literal such as "123.45" or "-0.5"
// into a value at the given scale. Extra fractional digits are an error
// rather than silently truncated.
func ParseDecimal64(s string, precision, scale int32) (Decimal64, error) {
	if scale < 0 || scale > Decimal64MaxPrecision ||
		precision <= 0 || precision > Decimal64MaxPrecision || scale > precision {
		return 0, fmt.Errorf("invalid decimal type DECIMAL(%d, %d)", precision, scale)
	}
	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if int32(len(fracPart)) > scale {
		return 0, fmt.Errorf("decimal %q has more than %d fractional digits", s, scale)
	}
	neg := strings.HasPrefix(intPart, "-")
	v, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q: %v", s, err)
	}
	v *= decimal64ScaleTable[scale]
	if fracPart != "" {
		f, err := strconv.ParseUint(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid decimal %q: %v", s, err)
		}
		frac := int64(f) * decimal64ScaleTable[int(scale)-len(fracPart)]
		if neg {
			v -= frac
		} else {
			v += frac
		}
	}
	return Decimal64(v), nil
}

// Floor truncates toward negative infinity, producing a scale-0 value.
func (x Decimal64) Floor(scale int32) Decimal64 {
	if scale == 0 {
		return x
	}
	step := Decimal64(decimal64ScaleTable[scale])
	v := x
	if v < 0 {
		v -= step - 1
	}
	return v / step
}

// Ceil rounds toward positive infinity, producing a scale-0 value.
func (x Decimal64) Ceil(scale int32) Decimal64 {
	if scale == 0 {
		return x
	}
	step := Decimal64(decimal64ScaleTable[scale])
	v := x
	if v > 0 {
		v += step - 1
	}
	return v / step
}

// Format renders x at the given scale, e.g. 12345 at scale 2 -> "123.45".
func (x Decimal64) Format(scale int32) string {
	if scale == 0 {
		return strconv.FormatInt(int64(x), 10)
	}
	v := int64(x)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	step := decimal64ScaleTable[scale]
	return fmt.Sprintf("%s%d.%0*d", sign, v/step, scale, v%step)
}

// CompareDecimal64 returns -1, 0 or 1; both values must share a scale.
func CompareDecimal64(x, y Decimal64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
