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

// Package function holds the operation registry: the mapping from an
// operation name to its overloads, each overload carrying its accepted
// parameter types, its output-type rule and its kernel.
//
// The registry is populated once, inside this package's init, and is
// read-only afterwards. Lookups from any number of goroutines are safe
// without locking.
package function

import (
	"sort"
	"strings"

	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/container/vector"
)

// BuiltinFn is the kernel of one overload. It receives the coerced input
// columns and a result column preallocated by the evaluator: the result
// already has the right length and its null set is the union of the
// inputs' null sets. The kernel must fill values only for non-null rows.
type BuiltinFn func(ivecs []*vector.Vector, rvec *vector.Vector) error

// Function is one overload of a named operation.
type Function struct {
	// Index is the overload's position among all overloads of the name.
	Index int32

	// Args are the accepted parameter types. Inputs that don't match
	// exactly may still be admitted through an implicit widening cast.
	Args []types.T

	// ReturnTyp is the fixed output type of the overload.
	ReturnTyp types.T

	// FlexibleReturnType, when set, derives the output type from the
	// concrete input types instead of ReturnTyp. Must be pure: planners
	// cache its result.
	FlexibleReturnType func(args []types.Type) types.Type

	Fn BuiltinFn
}

// ReturnType derives the output type of the overload for the given
// (already coerced) input types.
func (f Function) ReturnType(args []types.Type) types.Type {
	if f.FlexibleReturnType != nil {
		return f.FlexibleReturnType(args)
	}
	return f.ReturnTyp.ToType()
}

// Functions records all overloads of one operation name.
type Functions struct {
	Id int32

	// TypeCheckFn picks the overload matching the input types and, when
	// an implicit cast is needed, returns the target types to cast to.
	// It returns wrongFunctionParameters when no overload admits the
	// inputs.
	TypeCheckFn func(overloads []Function, inputs []types.T) (overloadIndex int32, targets []types.T)

	Overloads []Function
}

// functionRegister maps a lower-cased operation name to its overloads.
// Written once in init, never mutated afterwards.
var functionRegister map[string]Functions

func init() {
	functionRegister = make(map[string]Functions, len(builtins)+len(aliases))
	for name, fs := range builtins {
		functionRegister[name] = fs
	}
	for alias, name := range aliases {
		functionRegister[alias] = builtins[name]
	}
}

// Resolve returns the overload set of an operation name. Matching is
// case-insensitive.
func Resolve(name string) (Functions, error) {
	fs, ok := functionRegister[strings.ToLower(name)]
	if !ok {
		return Functions{}, moerr.NewUnknownOperation(name)
	}
	return fs, nil
}

// GetFunctionByName resolves an operation and picks the overload for the
// given input types. The returned target types are non-nil when the
// caller must cast the inputs before evaluation.
func GetFunctionByName(name string, args []types.Type) (Function, []types.T, error) {
	fs, err := Resolve(name)
	if err != nil {
		return Function{}, nil, err
	}
	inputs := make([]types.T, len(args))
	for i, a := range args {
		inputs[i] = a.Oid
	}
	idx, targets := fs.TypeCheckFn(fs.Overloads, inputs)
	if idx == wrongFunctionParameters {
		return Function{}, nil, moerr.NewTypeMismatch(strings.ToLower(name), typesString(args))
	}
	return fs.Overloads[idx], targets, nil
}

// Registered returns the sorted list of all registered operation names,
// aliases included.
func Registered() []string {
	names := make([]string, 0, len(functionRegister))
	for name := range functionRegister {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func typesString(args []types.Type) string {
	ss := make([]string, len(args))
	for i, a := range args {
		ss[i] = a.String()
	}
	return strings.Join(ss, ", ")
}
