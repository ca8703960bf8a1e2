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

// Package moerr defines the numbered error space of the engine.
//
// Every failure the engine can surface is a request-validation error:
// the caller asked for something malformed, and retrying the identical
// request cannot succeed. Numeric domain issues (log of a negative,
// overflow to infinity) are deliberately NOT errors; they are encoded in
// the result values per IEEE-754 convention.
package moerr

import "fmt"

const (
	Ok uint16 = 0

	// Group 1: internal errors
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102

	// Group 2: request validation
	ErrUnknownOperation uint16 = 20201
	ErrTypeMismatch     uint16 = 20202
	ErrLengthMismatch   uint16 = 20203
	ErrInvalidInput     uint16 = 20204
	ErrOutOfRange       uint16 = 20205

	// Group 3: configuration
	ErrBadConfig uint16 = 20301
)

// Error carries an error code and a rendered message.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

// ErrorCode returns the numeric code of the error.
func (e *Error) ErrorCode() uint16 {
	return e.code
}

// Is matches on the error code, so errors.Is sees two moerr errors with
// the same code as equal regardless of their messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

func newError(code uint16, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

func NewInternal(format string, args ...any) *Error {
	return newError(ErrInternal, "internal error: "+format, args...)
}

func NewNYI(format string, args ...any) *Error {
	return newError(ErrNYI, format+" is not yet implemented", args...)
}

func NewUnknownOperation(name string) *Error {
	return newError(ErrUnknownOperation, "unknown operation '%s'", name)
}

func NewTypeMismatch(op string, types string) *Error {
	return newError(ErrTypeMismatch, "operation '%s' does not accept argument types (%s)", op, types)
}

func NewLengthMismatch(op string, want, got int) *Error {
	return newError(ErrLengthMismatch, "operation '%s' got input columns of different lengths: %d and %d", op, want, got)
}

func NewInvalidInput(format string, args ...any) *Error {
	return newError(ErrInvalidInput, "invalid input: "+format, args...)
}

func NewOutOfRange(typ string, format string, args ...any) *Error {
	return newError(ErrOutOfRange, "data out of range: data type "+typ+", "+format, args...)
}

func NewBadConfig(format string, args ...any) *Error {
	return newError(ErrBadConfig, "invalid configuration: "+format, args...)
}

// IsMoErrCode reports whether err is a moerr with the given code.
func IsMoErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	e, ok := err.(*Error)
	return ok && e.code == code
}
