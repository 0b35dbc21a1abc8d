// doc.go — package documentation for xgx-outcome
//
// Package outcome provides an immutable outcome envelope: a Status
// (Success, Partial or Error), an optional payload, an ordered sequence of
// diagnostic Messages and an ordered sequence of captured faults. A small
// composition algebra merges many envelopes into one. It is designed to be:
//   - Pure (no logging, retries or I/O in core; adapters live in sub-packages)
//   - Allocation-aware (merges size their buffers exactly once)
//   - Interoperable with the stdlib (faults are errors; errors.Is/As work)
//
// # Status Derivation
//
// Non-forcing constructors (New, Merge, Derive, Combine) compute the status
// from content:
//
//	+-----------+-------------+-----------+----------+
//	| error msg | success msg | any fault | status   |
//	+-----------+-------------+-----------+----------+
//	| no        | -           | no        | Success  |
//	| yes       | yes         | -         | Partial  |
//	| -         | yes         | yes       | Partial  |
//	| yes       | no          | -         | Error    |
//	| -         | no          | yes       | Error    |
//	+-----------+-------------+-----------+----------+
//
// Warning and Information messages never change the outcome. Forcing
// constructors (Success, Partial, Failure, MergeSuccess, ...) skip the rule
// and attach messages as supplementary information.
//
// # Absent vs. Empty
//
// Collections remember whether they were supplied. A nil slice passed to a
// constructor is absent; []Message{} is explicitly empty. Merging only
// absent collections yields an absent collection:
//
//	a := outcome.Ok()                             // messages absent
//	b := outcome.Ok()                             // messages absent
//	outcome.Combine(a, b).Messages().Present()    // false
//
// # Typed and Untyped Envelopes
//
// Outcome is Envelope[Unit]. Envelopes of any payload satisfy Result, so
// field validations of different types can be merged into one aggregate
// outcome:
//
//	name := validateName(n)       // outcome.Outcome
//	email := valueobject.NewEmail(s) // outcome.Envelope[valueobject.Email]
//	all := outcome.Merge(customer, name, email)
//
// # Capturing Faults
//
// Execute, ExecuteWith, Try, ExecuteContext and ExecuteAsync run caller work
// and turn a returned error or a panic into an error envelope whose fault
// list holds the raised error. Without an explicit code the message code
// is the fault's dynamic type name (FaultCode). Cancellation is just a fault:
// IsCanceled reports it.
//
// # Formatting
//
//   - %v, %s → "partial [Name.Required Email.Valid]"
//   - %+v    → multi-line status, value, messages and faults (with stacks of
//     recovered panics)
package outcome
