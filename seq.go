// seq.go — optional ordered sequences for xgx-outcome core.
//
// Design:
//   • Three observable states: absent, present-but-empty, populated. A nil
//     slice handed to a constructor means absent; a non-nil empty slice
//     means explicitly empty.
//   • Builders copy their input so callers can keep mutating their slices
//     without affecting a published envelope.
//   • Accessors never expose the backing array; Slice returns a copy.
package outcome

import "iter"

// Seq is an immutable, insertion-ordered sequence that remembers whether it
// was supplied at all.
type Seq[T any] struct {
	items   []T
	present bool
}

// None returns an absent sequence.
func None[T any]() Seq[T] { return Seq[T]{} }

// SeqOf returns a present sequence holding a copy of items. Calling it with
// no arguments yields a present, empty sequence.
func SeqOf[T any](items ...T) Seq[T] {
	return Seq[T]{items: cloneItems(items), present: true}
}

// SeqFrom maps a slice onto a sequence: nil is absent, anything else is
// present (a copy is taken).
func SeqFrom[T any](items []T) Seq[T] {
	if items == nil {
		return Seq[T]{}
	}
	return Seq[T]{items: cloneItems(items), present: true}
}

// Present reports whether the sequence was supplied (possibly empty).
func (s Seq[T]) Present() bool { return s.present }

// Len returns the number of entries; zero for absent sequences.
func (s Seq[T]) Len() int { return len(s.items) }

// NonEmpty reports whether the sequence holds at least one entry.
func (s Seq[T]) NonEmpty() bool { return len(s.items) > 0 }

// At returns the i-th entry. It panics when i is out of range, like a slice.
func (s Seq[T]) At(i int) T { return s.items[i] }

// All iterates index/value pairs in insertion order.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates entries in insertion order.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the entries: nil when absent, a non-nil
// empty slice when present but empty.
func (s Seq[T]) Slice() []T {
	if !s.present {
		return nil
	}
	return cloneItems(s.items)
}

// cloneItems always allocates an exact-length backing array so published
// sequences never alias caller memory. A nil input yields an empty, non-nil
// slice.
func cloneItems[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
