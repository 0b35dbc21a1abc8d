package valueobject

import (
	"strings"

	"github.com/go-playground/validator/v10"

	outcome "github.com/xgx-io/xgx-outcome"
)

const (
	CodeEmailRequired      = "Email.Address.IsRequired"
	CodeEmailShouldBeValid = "Email.Address.ShouldBeValid"
)

var validate = validator.New()

// Email is a syntactically valid e-mail address. The zero value is not
// valid.
type Email struct {
	value string
	valid bool
}

// NewEmail validates s. A malformed address yields an error envelope whose
// fault is the validator's report.
func NewEmail(s string) outcome.Envelope[Email] {
	if strings.TrimSpace(s) == "" {
		return outcome.FailureCode(Email{}, CodeEmailRequired, "Email is required")
	}
	if err := validate.Var(s, "email"); err != nil {
		return outcome.FailureFromFault(err, Email{}, CodeEmailShouldBeValid, "Email should be valid")
	}
	return outcome.Success(Email{value: s, valid: true}, nil, nil)
}

func (e Email) String() string { return e.value }
func (e Email) Valid() bool    { return e.valid }

// Equal compares addresses case-insensitively.
func (e Email) Equal(o Email) bool { return strings.EqualFold(e.value, o.value) }
