// unwrap.go — leaf extraction over fault graphs.
//
// Faults may themselves wrap other errors, singly (Unwrap() error) or as a
// set (Unwrap() []error, e.g. errors.Join). FlattenFaults reports the leaf
// errors reachable from every fault of a result.
//
// A plain map[error] cannot serve as the seen-set: interface values that are
// not comparable panic as map keys, even when their static type is (a struct
// with an interface field holding a slice). Values that compare are tracked
// by value, pointers by address; anything else is treated as acyclic and
// bounded by maxWalkDepth.
package outcome

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

type seenSet struct {
	byValue map[error]struct{}
	byPtr   map[uintptr]struct{}
}

// mark returns false when err was already visited.
func (s *seenSet) mark(err error) bool {
	if reflect.ValueOf(err).Comparable() {
		if _, ok := s.byValue[err]; ok {
			return false
		}
		s.byValue[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, ok := s.byPtr[id]; ok {
			return false
		}
		s.byPtr[id] = struct{}{}
	}
	return true
}

// FlattenFaults returns the leaf errors reachable from r's faults in
// depth-first, fault-by-fault order. Nil faults are skipped. It returns nil
// when r carries no faults.
func FlattenFaults(r Result) []error {
	fs := r.Faults()
	if !fs.NonEmpty() {
		return nil
	}
	seen := &seenSet{
		byValue: make(map[error]struct{}, 8),
		byPtr:   make(map[uintptr]struct{}, 8),
	}
	out := make([]error, 0, fs.Len())
	for f := range fs.Values() {
		if f == nil || !seen.mark(f) {
			continue
		}
		out = appendLeaves(out, f, seen, 0)
	}
	return out
}

func appendLeaves(out []error, err error, seen *seenSet, depth int) []error {
	if depth >= maxWalkDepth {
		return out
	}
	switch u := err.(type) {
	case multiUnwrapper:
		for _, child := range u.Unwrap() {
			if child != nil && seen.mark(child) {
				out = appendLeaves(out, child, seen, depth+1)
			}
		}
		return out
	case singleUnwrapper:
		if child := u.Unwrap(); child != nil {
			if seen.mark(child) {
				return appendLeaves(out, child, seen, depth+1)
			}
			return out
		}
	}
	return append(out, err)
}
