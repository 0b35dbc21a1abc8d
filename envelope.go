// envelope.go — the envelope value and its untyped form.
//
// Design tenets:
//   - Immutable values: constructors copy their inputs, accessors copy their
//     outputs, nothing mutates a published envelope.
//   - One derivation rule: every non-forcing path goes through DeriveStatus.
//   - Interop-first: faults are plain Go errors and stay reachable through
//     errors.Is/As (see Envelope.Err and predicates.go).
package outcome

// Result is the read-only surface shared by envelopes of every payload
// type. Merge operations accept Results so envelopes carrying different
// payloads can be combined into one.
type Result interface {
	Status() Status
	Messages() Seq[Message]
	Faults() Seq[error]
}

// Envelope is the immutable outcome of an operation.
//
// The payload is never consulted when deriving status: an envelope may be
// StatusError and still carry a value for diagnostics.
type Envelope[T any] struct {
	status   Status
	value    T
	messages Seq[Message]
	faults   Seq[error]
}

// Unit is the zero-size payload of untyped envelopes.
type Unit struct{}

// Outcome is the payload-less envelope.
type Outcome = Envelope[Unit]

func (e Envelope[T]) Status() Status         { return e.status }
func (e Envelope[T]) Value() T               { return e.value }
func (e Envelope[T]) Messages() Seq[Message] { return e.messages }
func (e Envelope[T]) Faults() Seq[error]     { return e.faults }

func (e Envelope[T]) IsSuccess() bool { return e.status == StatusSuccess }
func (e Envelope[T]) IsPartial() bool { return e.status == StatusPartial }
func (e Envelope[T]) IsError() bool   { return e.status == StatusError }

// HasMessages reports whether at least one message is attached.
func (e Envelope[T]) HasMessages() bool { return e.messages.NonEmpty() }

// HasFaults reports whether at least one fault is attached.
func (e Envelope[T]) HasFaults() bool { return e.faults.NonEmpty() }

// Untyped discards the payload.
func (e Envelope[T]) Untyped() Outcome {
	return Outcome{status: e.status, messages: e.messages, faults: e.faults}
}

// ToUntyped discards the payload of any Result. Sequences are shared, not
// copied: they are immutable.
func ToUntyped(r Result) Outcome {
	if o, ok := r.(Outcome); ok {
		return o
	}
	return Outcome{status: r.Status(), messages: r.Messages(), faults: r.Faults()}
}

// Typed lifts a Result into an envelope with a zero payload, preserving
// status, messages and faults.
func Typed[T any](r Result) Envelope[T] {
	return Envelope[T]{status: r.Status(), messages: r.Messages(), faults: r.Faults()}
}

// WithValue returns a copy of e carrying value instead of its payload.
func (e Envelope[T]) WithValue(value T) Envelope[T] {
	e.value = value
	return e
}

var _ Result = Envelope[int]{}
