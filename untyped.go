// untyped.go — helpers for payload-less envelopes.
//
// Every helper delegates to the generic constructors with a Unit payload,
// so the derivation rule and the merge algebra exist in one place only.
package outcome

// Ok forces StatusSuccess. With no messages the message sequence is absent.
func Ok(messages ...Message) Outcome {
	return Success(Unit{}, messages, nil)
}

// Fail forces StatusError. With no messages the message sequence is absent.
func Fail(messages ...Message) Outcome {
	return Failure(Unit{}, messages, nil)
}

// FailCode forces StatusError with a single error-kind message.
func FailCode(code, description string) Outcome {
	return FailureCode(Unit{}, code, description)
}

// Derive builds an untyped envelope whose status is derived.
func Derive(messages []Message, faults []error) Outcome {
	return New(Unit{}, messages, faults)
}

// Combine merges results and derives the status.
func Combine(results ...Result) Outcome {
	return Merge(Unit{}, results...)
}

// CombineFailure merges results, appends one error-kind message built from
// code and description, and forces StatusError.
func CombineFailure(code, description string, results ...Result) Outcome {
	return MergeFailureCode(Unit{}, code, description, results...)
}
