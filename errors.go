// errors.go — construction-contract violations.
//
// These errors signal misuse of the leaf-type contract (a programming
// error), never a domain outcome. Domain failures travel inside envelopes.
package outcome

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("outcome: argument out of range")
	// ErrNullArgument matches any *NullArgumentError via errors.Is.
	ErrNullArgument = errors.New("outcome: required argument is absent")
)

// ValidationError reports an argument outside its permitted range.
type ValidationError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("outcome: invalid %s: %v", e.Param, e.Value)
	}
	return fmt.Sprintf("outcome: invalid %s: %v (%s)", e.Param, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NullArgumentError reports a required argument that was not supplied.
type NullArgumentError struct {
	Param string
}

func (e *NullArgumentError) Error() string {
	return "outcome: " + e.Param + " is required"
}

func (e *NullArgumentError) Is(target error) bool { return target == ErrNullArgument }

// EnvelopeError is the error view of a non-success envelope. Error() lists
// the error-kind message codes and fault messages; Unwrap exposes the
// faults so errors.Is/As reach them.
type EnvelopeError struct {
	status   Status
	messages Seq[Message]
	faults   Seq[error]
}

func (e *EnvelopeError) Status() Status         { return e.status }
func (e *EnvelopeError) Messages() Seq[Message] { return e.messages }
func (e *EnvelopeError) Faults() Seq[error]     { return e.faults }

func (e *EnvelopeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.status.String())
	codes := 0
	for _, m := range e.messages.items {
		if m.kind != KindError {
			continue
		}
		if codes == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(m.code)
		codes++
	}
	for _, f := range e.faults.items {
		if f == nil {
			continue
		}
		sb.WriteString("; ")
		sb.WriteString(f.Error())
	}
	return sb.String()
}

// Unwrap returns the faults (never the backing array).
func (e *EnvelopeError) Unwrap() []error { return e.faults.Slice() }

// Err returns nil for successful envelopes and an *EnvelopeError otherwise.
// The EnvelopeError is itself a Result, so it can be merged back.
func (e Envelope[T]) Err() error {
	if e.status == StatusSuccess {
		return nil
	}
	return &EnvelopeError{status: e.status, messages: e.messages, faults: e.faults}
}
