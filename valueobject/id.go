package valueobject

import (
	"github.com/google/uuid"

	outcome "github.com/xgx-io/xgx-outcome"
)

// CodeIDShouldBeValid is reported by ParseID for malformed input.
const CodeIDShouldBeValid = "ValueObject.Id.ShouldBeValid"

// ID is a time-ordered (UUIDv7) entity identifier.
type ID struct {
	value uuid.UUID
}

// NewID generates a fresh UUIDv7 identifier.
func NewID() ID {
	return ID{value: uuid.Must(uuid.NewV7())}
}

// IDFrom wraps an existing UUID.
func IDFrom(u uuid.UUID) ID { return ID{value: u} }

// ParseID parses the textual form of an identifier.
func ParseID(s string) outcome.Envelope[ID] {
	u, err := uuid.Parse(s)
	if err != nil {
		return outcome.FailureFromFault(err, ID{}, CodeIDShouldBeValid, "Id should be a valid UUID")
	}
	return outcome.Success(ID{value: u}, nil, nil)
}

func (id ID) UUID() uuid.UUID { return id.value }
func (id ID) IsZero() bool    { return id.value == uuid.Nil }
func (id ID) String() string  { return id.value.String() }
func (id ID) Equal(o ID) bool { return id.value == o.value }
