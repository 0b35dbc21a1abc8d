package outcome

import (
	"errors"
	"slices"
	"testing"
)

func codesOf(s Seq[Message]) []string {
	out := make([]string, 0, s.Len())
	for m := range s.Values() {
		out = append(out, m.Code())
	}
	return out
}

func TestMerge_OrderAndAbsence(t *testing.T) {
	t.Parallel()

	m1, m2, m3 := ErrorMessage("m1"), Warning("m2"), Information("m3")
	a := Derive([]Message{m1}, nil)
	b := Derive(nil, nil)
	c := Derive([]Message{m2, m3}, nil)

	merged := Combine(a, b, c)
	if got, want := codesOf(merged.Messages()), []string{"m1", "m2", "m3"}; !slices.Equal(got, want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}

	both := Combine(b, Derive(nil, nil))
	if both.Messages().Present() {
		t.Fatalf("merging only absent collections must stay absent")
	}
	if both.Faults().Present() {
		t.Fatalf("merging only absent faults must stay absent")
	}
}

func TestMerge_EmptyIsPresent(t *testing.T) {
	t.Parallel()

	merged := Combine(Derive(nil, nil), Derive([]Message{}, nil))
	if !merged.Messages().Present() || merged.Messages().Len() != 0 {
		t.Fatalf("absent + empty must be present and empty")
	}
}

func TestMerge_NoInputs(t *testing.T) {
	t.Parallel()

	e := Merge("v")
	if !e.IsSuccess() || e.Messages().Present() || e.Faults().Present() || e.Value() != "v" {
		t.Fatalf("Merge with no results: %+v", e)
	}
}

func TestMerge_FaultsConcatenated(t *testing.T) {
	t.Parallel()

	f1, f2, f3 := errors.New("f1"), errors.New("f2"), errors.New("f3")
	merged := Combine(
		Derive(nil, []error{f1}),
		Derive(nil, nil),
		Derive(nil, []error{f2, f3}),
	)
	got := merged.Faults().Slice()
	if len(got) != 3 || got[0] != f1 || got[1] != f2 || got[2] != f3 {
		t.Fatalf("faults = %v", got)
	}
	if !merged.IsError() {
		t.Fatalf("faults without success messages derive error, got %s", merged.Status())
	}
}

func TestMerge_ForcingVariants(t *testing.T) {
	t.Parallel()

	failing := Fail(ErrorMessage("E"))
	if got := MergeSuccess(0, failing).Status(); got != StatusSuccess {
		t.Fatalf("MergeSuccess = %s", got)
	}
	if got := MergePartial(0, failing).Status(); got != StatusPartial {
		t.Fatalf("MergePartial = %s", got)
	}
	if got := MergeFailure(0, Ok(SuccessMessage("S"))).Status(); got != StatusError {
		t.Fatalf("MergeFailure = %s", got)
	}
	if got := MergeWithStatus(StatusPartial, 0, Ok()).Status(); got != StatusPartial {
		t.Fatalf("MergeWithStatus = %s", got)
	}
}

func TestMergeFailureCode_AppendsAfterUpstream(t *testing.T) {
	t.Parallel()

	up1 := Fail(ErrorMessage("Up.One"))
	up2 := Ok(SuccessMessage("Up.Two"))
	e := MergeFailureCode(0, "Aggregate.Invalid", "aggregate invalid", up1, up2)

	if got, want := codesOf(e.Messages()), []string{"Up.One", "Up.Two", "Aggregate.Invalid"}; !slices.Equal(got, want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	if !e.IsError() {
		t.Fatalf("status = %s, want error", e.Status())
	}

	// With only absent upstream collections the extra message still lands.
	lone := CombineFailure("Only", "", Ok(), Ok())
	if got := codesOf(lone.Messages()); !slices.Equal(got, []string{"Only"}) {
		t.Fatalf("codes = %v", got)
	}
}

func TestMergeFailureMessages_ExtraOrder(t *testing.T) {
	t.Parallel()

	extra := []Message{ErrorMessage("X1"), Warning("X2")}
	e := MergeFailureMessages(0, extra, Fail(ErrorMessage("U")))
	if got, want := codesOf(e.Messages()), []string{"U", "X1", "X2"}; !slices.Equal(got, want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	extra[0] = Warning("mutated")
	if e.Messages().At(1).Code() != "X1" {
		t.Fatalf("merged messages alias the extra slice")
	}
}

func TestMerge_HeterogeneousPayloads(t *testing.T) {
	t.Parallel()

	name := Failure("", []Message{ErrorMessage("Name.Required")}, nil)
	age := Success(30, []Message{SuccessMessage("Age.Valid")}, nil)
	flag := Ok()

	merged := Merge(struct{ ok bool }{}, name, age, flag)
	if !merged.IsPartial() {
		t.Fatalf("status = %s, want partial", merged.Status())
	}
}

// The merged buffer is sized exactly once from the summed source lengths.
func TestConcat_ExactCapacity(t *testing.T) {
	t.Parallel()

	inputs := [][]Result{
		{Derive([]Message{ErrorMessage("a")}, nil), Derive(nil, nil), Derive([]Message{Warning("b"), Warning("c")}, nil)},
		{Derive([]Message{}, nil), Derive([]Message{Information("x")}, nil)},
		{Derive([]Message{}, nil), Derive([]Message{}, nil)},
	}
	for i, results := range inputs {
		for _, extra := range [][]Message{nil, {ErrorMessage("extra")}} {
			s := joinMessages(extra, results)
			want := len(extra)
			for _, r := range results {
				want += r.Messages().Len()
			}
			if s.Len() != want {
				t.Fatalf("case %d: len = %d, want %d", i, s.Len(), want)
			}
			if cap(s.items) != len(s.items) {
				t.Fatalf("case %d: cap = %d, len = %d; buffer grew incrementally", i, cap(s.items), len(s.items))
			}
		}
	}
}

func TestConcat_SingleAllocation(t *testing.T) {
	results := []Result{
		Derive([]Message{ErrorMessage("a")}, nil),
		Derive(nil, nil),
		Derive([]Message{Warning("b"), Warning("c")}, nil),
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = joinMessages(nil, results)
	})
	if allocs > 1 {
		t.Fatalf("joinMessages allocated %.0f times, want at most 1", allocs)
	}
}
