// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package text provides value semantics for strings which are produced on demand.
//
// The package is built around a single capability:
//
//   - Text: anything which can produce a string, possibly failing while doing so
//
// # Evaluation
//
// There are two ways of evaluating a Text:
//
//   - Read: returns the produced string or the error the Text failed with, unchanged
//   - Must: returns the produced string or panics with an UncheckedError wrapping the failure
//
// Must exists for the few methods whose signature is fixed by an interface
// and therefore cannot return an error, e.g. fmt.Stringer. Everything
// else should use Read.
//
// # Envelope
//
// Envelope turns any Text into a value object. Concrete text types embed
// a *Envelope and get the following for free:
//
//   - AsString: Read of the wrapped Text
//   - String: Must of the wrapped Text
//   - Equal: compares produced strings, an Envelope is always equal to itself
//   - Hash: hash of the produced string, consistent with Equal
//
// For example:
//
//	type Upper struct {
//	    *text.Envelope
//	}
//
//	func NewUpper(t text.Text) Upper {
//	    return Upper{
//	        Envelope: text.NewFunc(func() (string, error) {
//	            s, err := t.AsString()
//	            if err != nil {
//	                return "", err
//	            }
//	            return strings.ToUpper(s), nil
//	        }),
//	    }
//	}
//
// An Envelope never caches the produced string. Every method call
// evaluates the wrapped Text again.
package text
