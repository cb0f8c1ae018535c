// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"

	"github.com/z5labs/text"
)

// FromText returns a [Reader] which reads its value by producing t.
// The value is always set when t succeeds and any error from t is
// returned unchanged.
func FromText(t text.Text) Reader[string] {
	return ReaderFunc[string](func(ctx context.Context) (Value[string], error) {
		s, err := text.Read(t)
		if err != nil {
			return Value[string]{}, err
		}
		return ValueOf(s), nil
	})
}

// Text returns a text.Text which produces its string by reading r with
// ctx. An unset value makes the text fail with [ErrValueNotSet].
func Text(ctx context.Context, r Reader[string]) text.Text {
	return text.Func(func() (string, error) {
		return Read(ctx, r)
	})
}
