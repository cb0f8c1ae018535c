// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try helps translate panics back into errors.
package try

import (
	"errors"
	"fmt"
)

// PanicError represents a recovered panic whose value did not implement [error].
type PanicError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Recover must be deferred directly. If a panic is in flight it is
// stopped and its value is stored in err. Error values are kept as is,
// so any cause chain they carry survives [errors.Is] and [errors.As].
// If err already holds an error the two are joined.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	rerr, ok := r.(error)
	if !ok {
		rerr = PanicError{Value: r}
	}
	if *err == nil {
		*err = rerr
		return
	}
	*err = errors.Join(*err, rerr)
}
