package outcome

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type quotaError struct{ limit int }

func (e *quotaError) Error() string { return "quota exceeded" }

func TestExecute_PassThrough(t *testing.T) {
	t.Parallel()

	want := Success("ok", []Message{SuccessMessage("Done")}, nil)
	got := Execute(func() Envelope[string] { return want })
	if got.Value() != "ok" || !got.IsSuccess() || got.Messages().At(0).Code() != "Done" {
		t.Fatalf("Execute altered a returned envelope: %+v", got)
	}
}

func TestExecute_CapturesErrorPanic(t *testing.T) {
	t.Parallel()

	fault := &quotaError{limit: 3}
	got := Execute(func() Envelope[int] { panic(fault) })

	if !got.IsError() {
		t.Fatalf("status = %s, want error", got.Status())
	}
	if got.Faults().Len() != 1 || got.Faults().At(0) != error(fault) {
		t.Fatalf("faults = %v, want [fault]", got.Faults().Slice())
	}
	m := got.Messages().At(0)
	if m.Code() != "*outcome.quotaError" {
		t.Fatalf("code = %q, want the fault's type name", m.Code())
	}
	if m.Description() != "quota exceeded" {
		t.Fatalf("description = %q", m.Description())
	}
}

func TestExecute_CapturesNonErrorPanic(t *testing.T) {
	t.Parallel()

	got := Execute(func() Envelope[int] { panic("kaboom") })
	pe, ok := FaultAs[*PanicError](got)
	if !ok {
		t.Fatalf("want *PanicError fault, got %v", got.Faults().Slice())
	}
	if pe.Value != "kaboom" {
		t.Fatalf("panic value = %v", pe.Value)
	}
	if len(pe.Stack) == 0 {
		t.Fatalf("stack should be captured on recovery")
	}
	if got.Messages().At(0).Code() != "*outcome.PanicError" {
		t.Fatalf("code = %q", got.Messages().At(0).Code())
	}
}

func TestExecuteWith_Input(t *testing.T) {
	t.Parallel()

	double := func(n int) Envelope[int] {
		if n < 0 {
			panic(errors.New("negative"))
		}
		return Success(n*2, nil, nil)
	}
	if got := ExecuteWith(4, double); got.Value() != 8 {
		t.Fatalf("value = %d, want 8", got.Value())
	}
	if got := ExecuteWith(-1, double); !got.IsError() || got.Messages().At(0).Description() != "negative" {
		t.Fatalf("negative input: %+v", got)
	}
}

func TestTry_ReturnedErrorIsFault(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("db down")
	got := Try(func() (Envelope[string], error) {
		return Success("ignored", nil, nil), sentinel
	})
	if !got.IsError() || !HasFault(got, sentinel) {
		t.Fatalf("Try should capture the returned error: %+v", got)
	}
	if got.Value() != "" {
		t.Fatalf("envelope returned alongside an error must be discarded")
	}
}

func TestExecuteContext_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := ExecuteContext(ctx, func(ctx context.Context) (Envelope[int], error) {
		<-ctx.Done()
		return Envelope[int]{}, ctx.Err()
	})
	if !got.IsError() {
		t.Fatalf("status = %s, want error", got.Status())
	}
	if !IsCanceled(got) || !HasFault(got, context.Canceled) {
		t.Fatalf("cancellation fault should be attached: %v", got.Faults().Slice())
	}
}

func TestExecuteAsync_DeliversOnce(t *testing.T) {
	t.Parallel()

	ch := ExecuteAsync(context.Background(), func(context.Context) (Envelope[string], error) {
		return Success("done", nil, nil), nil
	})
	got, ok := <-ch
	if !ok || got.Value() != "done" {
		t.Fatalf("first receive = %+v, %v", got, ok)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("channel must be closed after one envelope")
	}
}

func TestExecuteAsync_DeadlineAndPanic(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	timedOut := <-ExecuteAsync(ctx, func(ctx context.Context) (Envelope[int], error) {
		<-ctx.Done()
		return Envelope[int]{}, ctx.Err()
	})
	if !IsCanceled(timedOut) || !HasFault(timedOut, context.DeadlineExceeded) {
		t.Fatalf("deadline fault should be attached: %v", timedOut.Faults().Slice())
	}

	panicked := <-ExecuteAsync(context.Background(), func(context.Context) (Envelope[int], error) {
		panic("async kaboom")
	})
	if !panicked.IsError() || !strings.Contains(panicked.Messages().At(0).Description(), "async kaboom") {
		t.Fatalf("panic in async work should be captured: %+v", panicked)
	}
}
