package outcome

import (
	"slices"
	"testing"
)

func TestSeq_States(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		seq      Seq[int]
		present  bool
		nonEmpty bool
		slice    []int
	}{
		{"none", None[int](), false, false, nil},
		{"from-nil", SeqFrom[int](nil), false, false, nil},
		{"of-empty", SeqOf[int](), true, false, []int{}},
		{"from-empty", SeqFrom([]int{}), true, false, []int{}},
		{"populated", SeqOf(1, 2, 3), true, true, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.seq.Present() != tc.present || tc.seq.NonEmpty() != tc.nonEmpty {
				t.Fatalf("present=%v nonEmpty=%v", tc.seq.Present(), tc.seq.NonEmpty())
			}
			got := tc.seq.Slice()
			if (got == nil) != (tc.slice == nil) || !slices.Equal(got, tc.slice) {
				t.Fatalf("Slice() = %#v, want %#v", got, tc.slice)
			}
		})
	}
}

func TestSeq_CopiesInputAndOutput(t *testing.T) {
	t.Parallel()

	src := []int{1, 2}
	s := SeqFrom(src)
	src[0] = 99
	if s.At(0) != 1 {
		t.Fatalf("SeqFrom aliases its input")
	}
	out := s.Slice()
	out[1] = 42
	if s.At(1) != 2 {
		t.Fatalf("Slice exposes the backing array")
	}
}

func TestSeq_Iterators(t *testing.T) {
	t.Parallel()

	s := SeqOf("a", "b", "c")
	var idx []int
	for i, v := range s.All() {
		idx = append(idx, i)
		if v != s.At(i) {
			t.Fatalf("All yielded %q at %d", v, i)
		}
	}
	if !slices.Equal(idx, []int{0, 1, 2}) {
		t.Fatalf("indices = %v", idx)
	}
	if got := slices.Collect(s.Values()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("Values = %v", got)
	}
	for v := range s.Values() {
		if v != "a" {
			t.Fatalf("iteration did not stop at break")
		}
		break
	}
}
