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

// Package colexec executes one operation over one columnar batch.
//
// Evaluation is a pure, stateless transform: resolve the operation,
// validate and coerce the inputs, then run the kernel into a freshly
// allocated output column. No cross-call state exists, so re-evaluating
// the same inputs always yields bit-identical output.
package colexec

import (
	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/container/nulls"
	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/container/vector"
	"github.com/columnforge/vecengine/pkg/function"
)

// Evaluate applies the named operation to the input columns and returns
// the output column. Inputs are never modified.
//
// Error contract: ErrUnknownOperation when the name is not registered,
// ErrTypeMismatch when no overload admits the input types even with
// implicit widening, ErrLengthMismatch when input lengths differ. Numeric
// domain issues (log of a negative and friends) are encoded in the values
// as NaN or ±Inf, never returned as errors.
func Evaluate(name string, ivecs []*vector.Vector) (*vector.Vector, error) {
	f, targets, err := function.GetFunctionByName(name, inputTypes(ivecs))
	if err != nil {
		return nil, err
	}

	length := ivecs[0].Length()
	for _, v := range ivecs[1:] {
		if v.Length() != length {
			return nil, moerr.NewLengthMismatch(name, length, v.Length())
		}
	}

	vecs, err := function.CoerceInputs(ivecs, targets)
	if err != nil {
		return nil, err
	}

	rvec, err := vector.PreAlloc(f.ReturnType(inputTypes(vecs)), length)
	if err != nil {
		return nil, err
	}
	mergeNulls(rvec, vecs)

	if err := f.Fn(vecs, rvec); err != nil {
		return nil, err
	}
	return rvec, nil
}

func inputTypes(vecs []*vector.Vector) []types.Type {
	typs := make([]types.Type, len(vecs))
	for i, v := range vecs {
		typs[i] = v.Typ
	}
	return typs
}

// mergeNulls sets the result's null set to the elementwise union of the
// inputs' null sets. The union is built into a fresh bitmap, never
// aliasing an input's.
func mergeNulls(rvec *vector.Vector, ivecs []*vector.Vector) {
	for _, v := range ivecs {
		nulls.Set(rvec.Nsp, v.Nsp)
	}
}
