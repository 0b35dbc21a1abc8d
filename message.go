// message.go — immutable diagnostic records.
package outcome

// Message is a single structured diagnostic entry. It is plain data: safe to
// copy and share, never mutated after construction.
type Message struct {
	kind        Kind
	code        string
	description string
}

// NewMessage validates kind against the closed set and rejects an empty code.
// The kind is checked first.
func NewMessage(kind Kind, code, description string) (Message, error) {
	if !kind.Valid() {
		return Message{}, &ValidationError{Param: "kind", Value: uint8(kind), Reason: "must be between 1 and 4"}
	}
	if code == "" {
		return Message{}, &NullArgumentError{Param: "code"}
	}
	return Message{kind: kind, code: code, description: description}, nil
}

// MustMessage is like NewMessage but panics on a contract violation.
func MustMessage(kind Kind, code, description string) Message {
	m, err := NewMessage(kind, code, description)
	if err != nil {
		panic(err)
	}
	return m
}

// Information returns an information-kind message. Panics if code is empty.
func Information(code string, description ...string) Message {
	return MustMessage(KindInformation, code, firstOrEmpty(description))
}

// SuccessMessage returns a success-kind message. Panics if code is empty.
func SuccessMessage(code string, description ...string) Message {
	return MustMessage(KindSuccess, code, firstOrEmpty(description))
}

// Warning returns a warning-kind message. Panics if code is empty.
func Warning(code string, description ...string) Message {
	return MustMessage(KindWarning, code, firstOrEmpty(description))
}

// ErrorMessage returns an error-kind message. Panics if code is empty.
func ErrorMessage(code string, description ...string) Message {
	return MustMessage(KindError, code, firstOrEmpty(description))
}

func (m Message) Kind() Kind          { return m.kind }
func (m Message) Code() string        { return m.code }
func (m Message) Description() string { return m.description }

// HasDescription reports whether a description was supplied.
func (m Message) HasDescription() bool { return m.description != "" }

// String renders "kind code: description" (description omitted when absent).
func (m Message) String() string {
	if m.description == "" {
		return m.kind.String() + " " + m.code
	}
	return m.kind.String() + " " + m.code + ": " + m.description
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
