// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config provides a functional approach to reading configuration values
// and bridges them with text values.
//
// Value[T] represents a configuration value that may or may not be set.
// Reader[T] is a source of such values and can be composed with Or, Map
// and Default.
//
// Read a value from an environment variable with a default:
//
//	name, err := config.Read(ctx,
//	    config.Default("world", config.Env("NAME")),
//	)
//
// Any text.Text can act as a config source, and any string Reader can act
// as a text.Text:
//
//	greeting := config.FromText(text.New(text.Of("hello")))
//	e := text.New(config.Text(ctx, config.Env("GREETING")))
//
// # Error Handling
//
// Readers distinguish between three states:
//   - Value is set (returns Value with set=true)
//   - Value is not set (returns Value with set=false, no error)
//   - Error occurred (returns error)
//
// The Read function converts "not set" to ErrValueNotSet for convenience.
package config
