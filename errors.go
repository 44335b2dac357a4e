// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilArgument is wrapped by an [ArgumentError] when a required
// sequence or function is nil.
var ErrNilArgument = errors.New("argument must not be nil")

// ErrOutOfRange is wrapped by an [ArgumentError] when a numeric
// argument is outside its permitted range.
var ErrOutOfRange = errors.New("argument out of range")

// ErrInvalidCast is wrapped by a [CastError].
var ErrInvalidCast = errors.New("invalid cast")

// An ArgumentError reports an invalid argument passed to one of the
// operators in this package.
type ArgumentError struct {
	Op   string // The operator, e.g. "enumerable.Filter".
	Name string // The parameter name.
	Err  error  // Either ErrNilArgument or ErrOutOfRange.
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the enclosed error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// A CastError identifies a sequence element that could not be
// converted to the requested type.
type CastError struct {
	Op     string       // The operator, e.g. "enumerable.CastTo".
	Index  int          // The position of the element in the sequence.
	Value  any          // The offending element.
	Target reflect.Type // The requested type.
}

// Error implements error.
func (e *CastError) Error() string {
	return fmt.Sprintf("%s: element %d of type %T cannot be cast to %v: %v",
		e.Op, e.Index, e.Value, e.Target, ErrInvalidCast)
}

// Unwrap returns [ErrInvalidCast].
func (e *CastError) Unwrap() error {
	return ErrInvalidCast
}

func nilArgument(op, name string) error {
	return &ArgumentError{Op: op, Name: name, Err: ErrNilArgument}
}
