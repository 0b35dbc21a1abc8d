// format.go — fmt.Formatter for envelopes.
//
// Behavior:
//
//   %s, %v   → concise single line: status followed by message codes
//                error [Name.Required BirthDate.Invalid]
//   %+v      → verbose, multi-line:
//                status=partial value=<%v of payload>
//                messages:
//                  error Name.Required: Name is required
//                faults:
//                  <each fault with %+v>
//   %q       → quoted concise form
package outcome

import (
	"fmt"
	"io"
	"strings"
)

// String returns the concise form.
func (e Envelope[T]) String() string {
	var sb strings.Builder
	formatConcise(&sb, e.status, e.messages)
	return sb.String()
}

func (e Envelope[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.status, e.value, e.messages, e.faults)
			return
		}
		formatConcise(s, e.status, e.messages)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.String())
	default:
		formatConcise(s, e.status, e.messages)
	}
}

func formatConcise(w io.Writer, status Status, messages Seq[Message]) {
	_, _ = io.WriteString(w, status.String())
	if !messages.NonEmpty() {
		return
	}
	_, _ = io.WriteString(w, " [")
	for i, m := range messages.items {
		if i > 0 {
			_, _ = io.WriteString(w, " ")
		}
		_, _ = io.WriteString(w, m.code)
	}
	_, _ = io.WriteString(w, "]")
}

func formatVerbose(w io.Writer, status Status, value any, messages Seq[Message], faults Seq[error]) {
	_, _ = fmt.Fprintf(w, "status=%s", status)
	if _, unit := value.(Unit); !unit {
		_, _ = fmt.Fprintf(w, " value=%v", value)
	}
	if messages.NonEmpty() {
		_, _ = io.WriteString(w, "\nmessages:")
		for _, m := range messages.items {
			_, _ = fmt.Fprintf(w, "\n  %s", m)
		}
	}
	if faults.NonEmpty() {
		_, _ = io.WriteString(w, "\nfaults:")
		for _, f := range faults.items {
			// Nested faults keep their own %+v rendering (stacks included).
			_, _ = fmt.Fprintf(w, "\n  %+v", f)
		}
	}
}
