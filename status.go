// status.go — terminal classification of an envelope.
package outcome

// Status is the terminal classification of an envelope. It is assigned once
// at construction and never changes.
//
// The zero value is StatusSuccess so that a zero Envelope agrees with the
// derivation rule applied to absent messages and faults.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusPartial
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
