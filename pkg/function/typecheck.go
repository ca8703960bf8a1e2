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

import "github.com/columnforge/vecengine/pkg/container/types"

// wrongFunctionParameters is returned by a TypeCheckFn when no overload
// admits the input types.
const wrongFunctionParameters int32 = -1

// implicitCastCost returns the cost of implicitly converting from one
// oid to another, and whether the conversion is allowed at all.
//
// Only lossless widenings are allowed: integers widen within their own
// signedness, float32 widens to float64, and integers widen to float64
// or decimal. Nothing ever narrows implicitly; in particular a float
// never becomes an integer and a decimal never loses scale.
func implicitCastCost(from, to types.T) (int, bool) {
	if from == to {
		return 0, true
	}
	switch to {
	case types.T_int64:
		if from == types.T_int8 || from == types.T_int16 || from == types.T_int32 {
			return 1, true
		}
	case types.T_uint64:
		if from == types.T_uint8 || from == types.T_uint16 || from == types.T_uint32 {
			return 1, true
		}
	case types.T_float64:
		if from == types.T_float32 {
			return 1, true
		}
		if from.IsInteger() {
			return 2, true
		}
	case types.T_decimal64:
		// uint64 is excluded: its largest values need 20 digits,
		// two more than a 64-bit decimal can hold.
		if from.IsSignedInt() ||
			from == types.T_uint8 || from == types.T_uint16 || from == types.T_uint32 {
			return 2, true
		}
	}
	return 0, false
}

// normalTypeCheck is the TypeCheckFn shared by every builtin. Among the
// overloads of matching arity it picks the one reachable with the lowest
// total cast cost, preferring an exact match; ties go to the overload
// registered first. When the winner needs casts, the overload's parameter
// types are returned as cast targets.
func normalTypeCheck(overloads []Function, inputs []types.T) (int32, []types.T) {
	bestIndex := wrongFunctionParameters
	bestCost := 0
	for i, f := range overloads {
		if len(f.Args) != len(inputs) {
			continue
		}
		cost, ok := 0, true
		for j := range inputs {
			c, can := implicitCastCost(inputs[j], f.Args[j])
			if !can {
				ok = false
				break
			}
			cost += c
		}
		if !ok {
			continue
		}
		if bestIndex == wrongFunctionParameters || cost < bestCost {
			bestIndex, bestCost = int32(i), cost
		}
	}
	if bestIndex == wrongFunctionParameters || bestCost == 0 {
		return bestIndex, nil
	}
	targets := make([]types.T, len(inputs))
	copy(targets, overloads[bestIndex].Args)
	return bestIndex, targets
}
