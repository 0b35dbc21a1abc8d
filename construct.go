// construct.go — envelope constructors for xgx-outcome core.
//
// Scope:
//   - Direct construction with an explicit status (WithStatus).
//   - Derived construction (New): status computed by DeriveStatus.
//   - Forcing constructors (Success/Partial/Failure): status fixed, messages
//     attached as supplementary information only.
//   - Fault constructors: one message plus the fault itself.
//
// Notes:
//   - nil slices are absent collections; []T{} is an explicitly empty one.
//   - Inputs are copied; callers may reuse their slices afterwards.
package outcome

// WithStatus builds an envelope with status taken as given.
func WithStatus[T any](status Status, value T, messages []Message, faults []error) Envelope[T] {
	return Envelope[T]{
		status:   status,
		value:    value,
		messages: SeqFrom(messages),
		faults:   SeqFrom(faults),
	}
}

// New builds an envelope whose status is derived from messages and faults.
func New[T any](value T, messages []Message, faults []error) Envelope[T] {
	ms, fs := SeqFrom(messages), SeqFrom(faults)
	return Envelope[T]{status: DeriveStatus(ms, fs), value: value, messages: ms, faults: fs}
}

// Success forces StatusSuccess regardless of message content.
func Success[T any](value T, messages []Message, faults []error) Envelope[T] {
	return WithStatus(StatusSuccess, value, messages, faults)
}

// Partial forces StatusPartial.
func Partial[T any](value T, messages []Message, faults []error) Envelope[T] {
	return WithStatus(StatusPartial, value, messages, faults)
}

// Failure forces StatusError.
func Failure[T any](value T, messages []Message, faults []error) Envelope[T] {
	return WithStatus(StatusError, value, messages, faults)
}

// Single builds an envelope with status taken as given and exactly one
// message. It panics if kind or code violate the Message contract.
func Single[T any](status Status, value T, kind Kind, code, description string, faults []error) Envelope[T] {
	return Envelope[T]{
		status:   status,
		value:    value,
		messages: SeqOf(MustMessage(kind, code, description)),
		faults:   SeqFrom(faults),
	}
}

// FailureCode forces StatusError with a single error-kind message.
func FailureCode[T any](value T, code, description string) Envelope[T] {
	return Single(StatusError, value, KindError, code, description, nil)
}

// FromFault builds an error envelope whose only message embeds kind, code
// and description and whose only fault is fault. A nil fault leaves the
// fault sequence absent.
func FromFault[T any](fault error, value T, kind Kind, code, description string) Envelope[T] {
	return Envelope[T]{
		status:   StatusError,
		value:    value,
		messages: SeqOf(MustMessage(kind, code, description)),
		faults:   faultSeq(fault),
	}
}

func faultSeq(fault error) Seq[error] {
	if fault == nil {
		return None[error]()
	}
	return SeqOf(fault)
}

// FailureFromFault is FromFault with KindError. An empty code falls back to
// the fault's type name (FaultCode) and an empty description to the fault's
// own message. With a nil fault the envelope is still an error, carries no
// faults, and an empty code becomes "<nil>".
func FailureFromFault[T any](fault error, value T, code, description string) Envelope[T] {
	if code == "" {
		code = FaultCode(fault)
	}
	if description == "" && fault != nil {
		description = fault.Error()
	}
	return FromFault(fault, value, KindError, code, description)
}
