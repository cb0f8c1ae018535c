// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package text

import (
	"encoding"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

var (
	_ Text                   = (*Envelope)(nil)
	_ encoding.TextMarshaler = (*Envelope)(nil)
	_ yaml.Marshaler         = (*Envelope)(nil)
)

// Hash returns the 64-bit xxHash of s. [Envelope.Hash] is defined
// in terms of it.
func Hash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Envelope gives a [Text] value semantics. Concrete text types embed
// a *Envelope and inherit equality, hashing and string conversion, all
// derived from the produced string.
//
// An Envelope never caches. Every method call evaluates the wrapped
// [Text] again, so a non-deterministic producer may make two envelopes
// equal at one point and unequal at the next.
type Envelope struct {
	origin Text
}

// New returns an Envelope around t.
func New(t Text) *Envelope {
	return &Envelope{origin: t}
}

// NewFunc returns an Envelope around f.
func NewFunc(f func() (string, error)) *Envelope {
	return New(Func(f))
}

type enveloped interface {
	envelope() *Envelope
}

// envelope is promoted to every type which embeds a *Envelope, so
// Equal can recognise itself behind them.
func (e *Envelope) envelope() *Envelope {
	return e
}

// AsString implements the [Text] interface. The error from the wrapped
// [Text] is returned unchanged.
func (e *Envelope) AsString() (string, error) {
	return Read(e.origin)
}

// String implements the [fmt.Stringer] interface. It panics with an
// [UncheckedError] if the wrapped [Text] fails.
func (e *Envelope) String() string {
	return Must(e)
}

// Equal reports whether other produces the same string as e.
//
// other is always equal when it is e itself (or embeds e) and never
// equal when it is nil or does not implement [Text]. No string is
// produced in either case. Otherwise both strings are produced and
// compared. Equal panics with an [UncheckedError] if either fails.
//
// A typed nil pointer to some other [Text] implementation still
// implements [Text], so it is evaluated like any other value. Whether
// that fails or panics is up to the implementation's nil handling.
func (e *Envelope) Equal(other any) bool {
	if x, ok := other.(enveloped); ok {
		self := x.envelope()
		if self == e {
			return true
		}
		if self == nil {
			return false
		}
	}
	that, ok := other.(Text)
	if !ok {
		return false
	}
	return Must(e) == Must(that)
}

// Hash returns [Hash] of the produced string, so envelopes which are
// [Envelope.Equal] have the same hash. It panics with an
// [UncheckedError] if the wrapped [Text] fails.
func (e *Envelope) Hash() uint64 {
	return Hash(Must(e.origin))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (e *Envelope) MarshalText() ([]byte, error) {
	s, err := e.AsString()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (e *Envelope) MarshalYAML() (any, error) {
	return e.AsString()
}
