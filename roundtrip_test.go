package outcome

import (
	"errors"
	"slices"
	"testing"
	"testing/quick"
)

func sameSeq[T comparable](a, b Seq[T]) bool {
	return a.Present() == b.Present() && slices.Equal(a.items, b.items)
}

func sameOutcome(a, b Outcome) bool {
	return a.Status() == b.Status() &&
		sameSeq(a.Messages(), b.Messages()) &&
		sameSeq(a.Faults(), b.Faults())
}

// buildEnvelope maps quick-generated inputs onto an envelope covering absent,
// empty and populated collections with every kind.
func buildEnvelope(value int, kinds []uint8, faultCount uint8, presence uint8) Envelope[int] {
	var msgs []Message
	if presence&1 != 0 {
		msgs = make([]Message, 0, len(kinds))
		for i, k := range kinds {
			kind := Kind(k%4) + KindInformation
			msgs = append(msgs, MustMessage(kind, "code", string(rune('a'+i%26))))
		}
	}
	var faults []error
	if presence&2 != 0 {
		faults = make([]error, 0, faultCount%4)
		for i := 0; i < int(faultCount%4); i++ {
			faults = append(faults, errors.New("fault"))
		}
	}
	if presence&4 != 0 {
		return WithStatus(Status(presence%3), value, msgs, faults)
	}
	return New(value, msgs, faults)
}

func TestQuickRoundTripLaw(t *testing.T) {
	property := func(value int, kinds []uint8, faultCount, presence uint8) bool {
		e := buildEnvelope(value, kinds, faultCount, presence)
		once := ToUntyped(e)
		twice := ToUntyped(Typed[int](ToUntyped(e)))
		return sameOutcome(once, twice) && sameOutcome(once, e.Untyped())
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("round-trip law failed: %v", err)
	}
}

func TestQuickMergeLength(t *testing.T) {
	property := func(a, b []uint8, pa, pb uint8) bool {
		ea := buildEnvelope(0, a, 0, pa)
		eb := buildEnvelope(0, b, 0, pb)
		merged := Combine(ea, eb)
		return merged.Messages().Len() == ea.Messages().Len()+eb.Messages().Len() &&
			merged.Messages().Present() == (ea.Messages().Present() || eb.Messages().Present())
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("merge length property failed: %v", err)
	}
}

func TestTyped_ZeroPayload(t *testing.T) {
	t.Parallel()

	o := Fail(ErrorMessage("E"))
	typed := Typed[string](o)
	if typed.Value() != "" || !typed.IsError() || typed.Messages().At(0).Code() != "E" {
		t.Fatalf("Typed lost information: %+v", typed)
	}
}

func TestValueAs(t *testing.T) {
	t.Parallel()

	var r Result = Success(7, nil, nil)
	if v, ok := ValueAs[int](r); !ok || v != 7 {
		t.Fatalf("ValueAs[int] = %v, %v", v, ok)
	}
	if _, ok := ValueAs[string](r); ok {
		t.Fatalf("ValueAs[string] should not match an int payload")
	}
}
