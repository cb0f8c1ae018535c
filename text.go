// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package text

import (
	"errors"
	"fmt"
)

// Text represents a string value which is produced on demand.
// Producing the string may fail, e.g. when it is backed by I/O.
type Text interface {
	AsString() (string, error)
}

// Func is a functional implementation of the [Text] interface.
type Func func() (string, error)

// AsString implements the [Text] interface. A nil Func fails with [ErrNilText].
func (f Func) AsString() (string, error) {
	if f == nil {
		return "", ErrNilText
	}
	return f()
}

type constant string

func (s constant) AsString() (string, error) {
	return string(s), nil
}

// Of returns a [Text] which always produces s.
func Of(s string) Text {
	return constant(s)
}

// ErrNilText is returned when attempting to read a nil [Text].
var ErrNilText = errors.New("text: nil text")

// Read evaluates t and returns either the produced string or the
// error t failed with. The error is returned unchanged. Nothing is
// cached, so every call evaluates t again.
func Read(t Text) (string, error) {
	if t == nil {
		return "", ErrNilText
	}
	return t.AsString()
}

// UncheckedError is the panic value raised by [Must]. It carries the
// error which the underlying [Text] failed with.
type UncheckedError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e UncheckedError) Error() string {
	return fmt.Sprintf("text: failed to produce string: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e UncheckedError) Unwrap() error {
	return e.Cause
}

// Must evaluates t via [Read] and panics with an [UncheckedError] if it
// fails. It is only meant for methods whose signature is fixed and
// therefore cannot return an error, e.g. [fmt.Stringer].
func Must(t Text) string {
	s, err := Read(t)
	if err != nil {
		panic(UncheckedError{Cause: err})
	}
	return s
}
