package outcome

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"testing"
)

func TestCodesAndHasCode(t *testing.T) {
	t.Parallel()

	r := Merge(0,
		Failure(0, []Message{ErrorMessage("A")}, nil),
		Success("s", []Message{Warning("B"), SuccessMessage("C")}, nil),
	)
	if got := Codes(r); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("Codes = %v", got)
	}
	if !HasCode(r, "B") || HasCode(r, "Z") {
		t.Fatalf("HasCode mismatch")
	}
	if Codes(Success(0, nil, nil)) != nil {
		t.Fatalf("Codes of an envelope without messages should be nil")
	}
}

func TestFirstError(t *testing.T) {
	t.Parallel()

	r := Partial(0, []Message{
		SuccessMessage("Saved"),
		ErrorMessage("Email.Valid", "bad email"),
		ErrorMessage("Name.Required"),
	}, nil)
	m, ok := FirstError(r)
	if !ok || m.Code() != "Email.Valid" {
		t.Fatalf("FirstError = %v, %v", m, ok)
	}
	if _, ok := FirstError(Ok(Information("Note"))); ok {
		t.Fatalf("no error-kind message should be found")
	}
}

func TestHasFault_UsesErrorsIs(t *testing.T) {
	t.Parallel()

	base := fs.ErrNotExist
	wrapped := fmt.Errorf("open config: %w", base)
	joined := errors.Join(errors.New("other"), wrapped)

	r := Failure(0, nil, []error{joined})
	if !HasFault(r, fs.ErrNotExist) {
		t.Fatalf("HasFault should see through wrap and join")
	}
	if HasFault(r, fs.ErrPermission) {
		t.Fatalf("unexpected match")
	}
	if HasFault(r, nil) {
		t.Fatalf("a nil target never matches")
	}
}

func TestFaultAs(t *testing.T) {
	t.Parallel()

	pe := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}
	r := Failure(0, nil, []error{errors.New("first"), fmt.Errorf("ctx: %w", pe)})

	got, ok := FaultAs[*fs.PathError](r)
	if !ok || got != pe {
		t.Fatalf("FaultAs = %v, %v", got, ok)
	}
	if _, ok := FaultAs[*PanicError](r); ok {
		t.Fatalf("no PanicError attached")
	}
}

func TestIsCanceled(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		fault error
		want  bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped", fmt.Errorf("rpc: %w", context.Canceled), true},
		{"other", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := FailureFromFault(tc.fault, 0, "", "")
			if got := IsCanceled(r); got != tc.want {
				t.Fatalf("IsCanceled = %v, want %v", got, tc.want)
			}
		})
	}
	if IsCanceled(Ok()) {
		t.Fatalf("envelope without faults is never canceled")
	}
}

func TestFaultCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{nil, "<nil>"},
		{&fs.PathError{}, "*fs.PathError"},
		{errors.New("x"), "*errors.errorString"},
		{&PanicError{}, "*outcome.PanicError"},
	}
	for _, tc := range cases {
		if got := FaultCode(tc.err); got != tc.want {
			t.Fatalf("FaultCode(%T) = %q, want %q", tc.err, got, tc.want)
		}
		if tc.err != nil && FaultCode(tc.err) != fmt.Sprintf("%T", tc.err) {
			t.Fatalf("FaultCode must agree with %%T")
		}
	}
}
