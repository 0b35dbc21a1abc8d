// kind.go — message kinds for xgx-outcome core.
//
// Conventions:
//   - Kinds are a closed set; the numeric values start at 1 so the zero value
//     is never a valid kind and an uninitialised Message is detectable.
//   - Validation is a range check, not a set lookup. Adding a kind means
//     moving kindMax.
package outcome

// Kind classifies a single diagnostic message.
type Kind uint8

const (
	KindInformation Kind = iota + 1
	KindSuccess
	KindWarning
	KindError
)

const (
	kindMin = KindInformation
	kindMax = KindError
)

// allKinds is the ordered set of kinds the core ships with.
var allKinds = []Kind{
	KindInformation,
	KindSuccess,
	KindWarning,
	KindError,
}

// Kinds returns a copy of the defined kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= kindMin && k <= kindMax
}

func (k Kind) String() string {
	switch k {
	case KindInformation:
		return "information"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "invalid"
	}
}
