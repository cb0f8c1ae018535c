// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package texttest provides test doubles for text producers.
package texttest

import "sync/atomic"

// Counter is a text producer which counts how many times it has been
// evaluated. It returns Err if set, otherwise Value.
type Counter struct {
	Value string
	Err   error

	calls atomic.Int64
}

// Returning configures a Counter which always produces s.
func Returning(s string) *Counter {
	return &Counter{Value: s}
}

// Failing configures a Counter which always fails with err.
func Failing(err error) *Counter {
	return &Counter{Err: err}
}

// AsString implements the text.Text interface.
func (c *Counter) AsString() (string, error) {
	c.calls.Add(1)
	if c.Err != nil {
		return "", c.Err
	}
	return c.Value, nil
}

// Calls reports the number of times AsString has been called.
func (c *Counter) Calls() int {
	return int(c.calls.Load())
}

// Sequence is a text producer which yields the next string in Values on
// every evaluation. Once exhausted it keeps returning the last value.
type Sequence struct {
	Values []string

	next atomic.Int64
}

// AsString implements the text.Text interface.
func (s *Sequence) AsString() (string, error) {
	i := int(s.next.Add(1)) - 1
	if i >= len(s.Values) {
		i = len(s.Values) - 1
	}
	if i < 0 {
		return "", nil
	}
	return s.Values[i], nil
}
