// merge.go — collection composition for xgx-outcome core.
//
// Goals:
//   • Concatenate message and fault sequences of many results in input
//     order, result by result, keeping each result's internal order.
//   • Size the output exactly once: a counting pass sums source lengths,
//     then a single allocation is filled by a copying pass.
//   • Keep absence observable: when every source is absent and there is
//     nothing extra to append, the output is absent rather than empty.
//
// Extra entries (the "force an error code in" case) go after all
// result-derived entries, in the order given.
package outcome

// concat joins the sequences selected by get from each result, then extra,
// into one exact-capacity sequence.
func concat[T any](extra []T, results []Result, get func(Result) Seq[T]) Seq[T] {
	total := len(extra)
	present := len(extra) > 0
	for _, r := range results {
		if s := get(r); s.present {
			present = true
			total += len(s.items)
		}
	}
	if !present {
		return Seq[T]{}
	}
	out := make([]T, total)
	n := 0
	for _, r := range results {
		n += copy(out[n:], get(r).items)
	}
	copy(out[n:], extra)
	return Seq[T]{items: out, present: true}
}

func joinMessages(extra []Message, results []Result) Seq[Message] {
	return concat(extra, results, Result.Messages)
}

func joinFaults(results []Result) Seq[error] {
	return concat(nil, results, Result.Faults)
}

// Merge combines results and derives the status from the merged content.
func Merge[T any](value T, results ...Result) Envelope[T] {
	ms, fs := joinMessages(nil, results), joinFaults(results)
	return Envelope[T]{status: DeriveStatus(ms, fs), value: value, messages: ms, faults: fs}
}

// MergeWithStatus combines results under an explicit status.
func MergeWithStatus[T any](status Status, value T, results ...Result) Envelope[T] {
	return Envelope[T]{
		status:   status,
		value:    value,
		messages: joinMessages(nil, results),
		faults:   joinFaults(results),
	}
}

// MergeSuccess combines results and forces StatusSuccess.
func MergeSuccess[T any](value T, results ...Result) Envelope[T] {
	return MergeWithStatus(StatusSuccess, value, results...)
}

// MergePartial combines results and forces StatusPartial.
func MergePartial[T any](value T, results ...Result) Envelope[T] {
	return MergeWithStatus(StatusPartial, value, results...)
}

// MergeFailure combines results and forces StatusError.
func MergeFailure[T any](value T, results ...Result) Envelope[T] {
	return MergeWithStatus(StatusError, value, results...)
}

// MergeFailureMessages combines results, appends extra after every
// result-derived message, and forces StatusError.
func MergeFailureMessages[T any](value T, extra []Message, results ...Result) Envelope[T] {
	return Envelope[T]{
		status:   StatusError,
		value:    value,
		messages: joinMessages(extra, results),
		faults:   joinFaults(results),
	}
}

// MergeFailureCode is MergeFailureMessages with a single error-kind message
// built from code and description. Panics if code is empty.
func MergeFailureCode[T any](value T, code, description string, results ...Result) Envelope[T] {
	return MergeFailureMessages(value, []Message{ErrorMessage(code, description)}, results...)
}
