// typed.go — typed payload access over heterogeneous results.
package outcome

// ValueAs extracts the payload of r when r is an envelope carrying T.
// It returns (zero, false) for any other payload type.
//
// The dynamic payload type must be T exactly; no conversions are attempted.
func ValueAs[T any](r Result) (T, bool) {
	if v, ok := r.(interface{ Value() T }); ok {
		return v.Value(), true
	}
	var zero T
	return zero, false
}
