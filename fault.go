// fault.go — turning raised faults into Go errors.
//
// A fault is anything the caller's work raised instead of returning an
// envelope: a returned error, an error value passed to panic, or any other
// panic value. Non-error panic values are boxed in *PanicError so every
// fault stays a plain error for errors.Is/As.
package outcome

import (
	"fmt"
	"reflect"
)

// PanicError wraps a non-error value recovered from a panic, together with
// the stack at the point of recovery.
type PanicError struct {
	Value any
	Stack Stack
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Format renders the recovered value; %+v adds the stack.
func (e *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "panic: %v", e.Value)
			if len(e.Stack) > 0 {
				_, _ = fmt.Fprint(s, "\nstack:")
				for _, fr := range e.Stack {
					_, _ = fmt.Fprintf(s, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
				}
			}
			return
		}
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprint(s, e.Error())
	}
}

// FaultCode returns the dynamic type name of fault (as printed by %T), the
// code used when a fault is captured without an explicit one.
func FaultCode(fault error) string {
	if fault == nil {
		return "<nil>"
	}
	return reflect.TypeOf(fault).String()
}

// faultFromRecovered normalises a recovered panic value. Error values are
// kept as is so the envelope carries the raised fault itself.
func faultFromRecovered(r any, skip int) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r, Stack: captureStack(skip+1, defaultMaxDepth)}
}
