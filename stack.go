// stack.go — stack capture for recovered panics.
//
// Stacks are captured only on the panic-recovery path of the execution
// wrappers; normal construction and merging never walk the stack.
package outcome

import "runtime"

// Frame is a single call site in a stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack lists frames from the most recent call outward.
type Stack []Frame

const defaultMaxDepth = 64

// captureStack records up to maxDepth frames, skipping skip frames above its
// caller. runtime.CallersFrames resolves inlined calls.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	// +2 skips runtime.Callers and captureStack itself.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
