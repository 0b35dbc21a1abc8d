// execute.go — fault-capturing execution wrappers.
//
// Each wrapper runs exactly one unit of caller-supplied work. A returned
// error or a panic is captured and converted with FailureFromFault; the
// wrapper itself never re-raises. Cancellation has no dedicated path: it is
// whatever error the work reports when its context is done.
package outcome

import "context"

// Execute runs work and converts a panic into an error envelope.
func Execute[T any](work func() Envelope[T]) (out Envelope[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = captured[T](faultFromRecovered(r, 2))
		}
	}()
	return work()
}

// ExecuteWith is Execute for work that takes an input.
func ExecuteWith[I, T any](input I, work func(I) Envelope[T]) (out Envelope[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = captured[T](faultFromRecovered(r, 2))
		}
	}()
	return work(input)
}

// Try runs work that reports faults as a returned error. The envelope is
// discarded when err is non-nil.
func Try[T any](work func() (Envelope[T], error)) (out Envelope[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = captured[T](faultFromRecovered(r, 2))
		}
	}()
	env, err := work()
	if err != nil {
		return captured[T](err)
	}
	return env
}

// ExecuteContext runs work synchronously with ctx passed through untouched.
// A context error returned by work surfaces as the envelope's fault.
func ExecuteContext[T any](ctx context.Context, work func(context.Context) (Envelope[T], error)) Envelope[T] {
	return Try(func() (Envelope[T], error) { return work(ctx) })
}

// ExecuteAsync runs work on its own goroutine and delivers exactly one
// envelope on the returned channel, which is buffered so the goroutine never
// blocks on an abandoned receiver.
func ExecuteAsync[T any](ctx context.Context, work func(context.Context) (Envelope[T], error)) <-chan Envelope[T] {
	ch := make(chan Envelope[T], 1)
	go func() {
		defer close(ch)
		ch <- ExecuteContext(ctx, work)
	}()
	return ch
}

func captured[T any](fault error) Envelope[T] {
	var zero T
	return FailureFromFault(fault, zero, "", "")
}
