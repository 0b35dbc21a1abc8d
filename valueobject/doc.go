// Package valueobject holds the small immutable values entities are built
// from: identifiers, timestamps, registry versions, e-mail addresses and
// audit data. Fallible constructors return outcome envelopes instead of
// panicking.
package valueobject
