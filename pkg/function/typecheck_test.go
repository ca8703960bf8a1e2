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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/columnforge/vecengine/pkg/container/types"
)

func TestImplicitCastCost(t *testing.T) {
	allowed := []struct {
		from, to types.T
	}{
		{types.T_int8, types.T_int64},
		{types.T_int16, types.T_int64},
		{types.T_int32, types.T_int64},
		{types.T_uint8, types.T_uint64},
		{types.T_uint32, types.T_uint64},
		{types.T_float32, types.T_float64},
		{types.T_int64, types.T_float64},
		{types.T_uint64, types.T_float64},
		{types.T_int32, types.T_decimal64},
		{types.T_uint32, types.T_decimal64},
	}
	for _, c := range allowed {
		_, ok := implicitCastCost(c.from, c.to)
		require.True(t, ok, "%s -> %s should be allowed", c.from.OidString(), c.to.OidString())
	}

	rejected := []struct {
		from, to types.T
	}{
		// narrowing
		{types.T_float64, types.T_int64},
		{types.T_float64, types.T_float32},
		{types.T_int64, types.T_int32},
		{types.T_decimal64, types.T_int64},
		{types.T_decimal64, types.T_float64},
		// signedness crossings
		{types.T_uint32, types.T_int64},
		{types.T_int32, types.T_uint64},
		// uint64 cannot fit in 18 decimal digits
		{types.T_uint64, types.T_decimal64},
		// strings never coerce into numerics
		{types.T_varchar, types.T_float64},
	}
	for _, c := range rejected {
		_, ok := implicitCastCost(c.from, c.to)
		require.False(t, ok, "%s -> %s should be rejected", c.from.OidString(), c.to.OidString())
	}

	cost, ok := implicitCastCost(types.T_float64, types.T_float64)
	require.True(t, ok)
	require.Equal(t, 0, cost)
}

func TestNormalTypeCheck(t *testing.T) {
	overloads := builtins["floor"].Overloads

	// exact match: no targets
	idx, targets := normalTypeCheck(overloads, []types.T{types.T_float64})
	require.Equal(t, types.T_float64, overloads[idx].Args[0])
	require.Nil(t, targets)

	// int16 admits both the int64 overload (cost 1) and the float64
	// overload (cost 2); the cheaper widening wins
	idx, targets = normalTypeCheck(overloads, []types.T{types.T_int16})
	require.Equal(t, types.T_int64, overloads[idx].Args[0])
	require.Equal(t, []types.T{types.T_int64}, targets)

	// no overload admits strings
	idx, _ = normalTypeCheck(overloads, []types.T{types.T_varchar})
	require.Equal(t, wrongFunctionParameters, idx)

	// arity mismatch
	idx, _ = normalTypeCheck(overloads, []types.T{types.T_float64, types.T_float64})
	require.Equal(t, wrongFunctionParameters, idx)
}
