// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides slog.Attr constructors, including ones for text values.
package slogfield

import (
	"log/slog"

	"github.com/z5labs/text"
)

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Int returns an slog.Attr for a int.
func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Uint64 returns an slog.Attr for a uint64.
func Uint64(key string, n uint64) slog.Attr {
	return slog.Uint64(key, n)
}

// Text returns an slog.Attr for a text.Text. The string is only produced
// if the record is actually handled. If producing it fails, the attr is
// rendered as a group holding the error instead.
func Text(key string, t text.Text) slog.Attr {
	return slog.Any(key, textValue{t: t})
}

type textValue struct {
	t text.Text
}

// LogValue implements the slog.LogValuer interface.
func (v textValue) LogValue() slog.Value {
	s, err := text.Read(v.t)
	if err != nil {
		return slog.GroupValue(Error(err))
	}
	return slog.StringValue(s)
}
