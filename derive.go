// derive.go — the status-derivation rule.
//
// Rule (shared by every non-forcing constructor and merge):
//   • hasError   = any message of KindError
//   • hasSuccess = any message of KindSuccess
//   • hasFault   = fault sequence non-empty
//   • neither error nor fault          → Success
//   • (error or fault) and success     → Partial
//   • otherwise                        → Error
//
// Warning and Information messages never influence the result.
package outcome

// DeriveStatus scans messages once, stopping as soon as both an error-kind
// and a success-kind message have been seen.
func DeriveStatus(messages Seq[Message], faults Seq[error]) Status {
	var hasError, hasSuccess bool
	for _, m := range messages.items {
		switch m.kind {
		case KindError:
			hasError = true
		case KindSuccess:
			hasSuccess = true
		}
		if hasError && hasSuccess {
			break
		}
	}
	return statusFromFlags(hasError, hasSuccess, faults.NonEmpty())
}

func statusFromFlags(hasError, hasSuccess, hasFault bool) Status {
	if !hasError && !hasFault {
		return StatusSuccess
	}
	if hasSuccess {
		return StatusPartial
	}
	return StatusError
}
