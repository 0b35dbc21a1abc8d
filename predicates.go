// predicates.go — questions callers ask of a merged result.
//
// Notes:
//   • Fault predicates use errors.Is / errors.As, so traversal covers both
//     Unwrap() error and Unwrap() []error chains.
//   • Cancellation is detected via the canonical context sentinels; there is
//     no dedicated cancellation status.
package outcome

import (
	"context"
	"errors"
)

// HasCode reports whether any message of r carries code.
func HasCode(r Result, code string) bool {
	for m := range r.Messages().Values() {
		if m.code == code {
			return true
		}
	}
	return false
}

// Codes returns the message codes of r in order, or nil when r has none.
func Codes(r Result) []string {
	ms := r.Messages()
	if !ms.NonEmpty() {
		return nil
	}
	out := make([]string, 0, ms.Len())
	for m := range ms.Values() {
		out = append(out, m.code)
	}
	return out
}

// FirstError returns the first error-kind message of r.
func FirstError(r Result) (Message, bool) {
	for m := range r.Messages().Values() {
		if m.kind == KindError {
			return m, true
		}
	}
	return Message{}, false
}

// HasFault reports whether any fault of r matches target via errors.Is.
func HasFault(r Result, target error) bool {
	if target == nil {
		return false
	}
	for f := range r.Faults().Values() {
		if f != nil && errors.Is(f, target) {
			return true
		}
	}
	return false
}

// FaultAs finds the first fault of r assignable to E via errors.As.
func FaultAs[E error](r Result) (E, bool) {
	var target E
	for f := range r.Faults().Values() {
		if f != nil && errors.As(f, &target) {
			return target, true
		}
	}
	return target, false
}

// IsCanceled reports whether any fault of r is a context cancellation or a
// deadline expiry.
func IsCanceled(r Result) bool {
	return HasFault(r, context.Canceled) || HasFault(r, context.DeadlineExceeded)
}
