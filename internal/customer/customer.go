// Package customer is a sample aggregate built on the entity base.
package customer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	outcome "github.com/xgx-io/xgx-outcome"
	"github.com/xgx-io/xgx-outcome/entity"
	"github.com/xgx-io/xgx-outcome/execinfo"
	"github.com/xgx-io/xgx-outcome/valueobject"
)

// NameMaxLength is the longest accepted name, in characters.
const NameMaxLength = 255

const (
	CodeNameRequired      = "Customer.Name.IsRequired"
	CodeNameMaxLength     = "Customer.Name.MaxLength"
	CodeBirthDateInFuture = "Customer.BirthDate.Should.LessThan.CurrentDate"
	CodeEmailInvalid      = "Customer.EmailAddress.Should.BeValid"
)

// Customer is registered through RegisterNew or rebuilt through
// FromExisting; fields change only through the Change methods.
type Customer struct {
	entity.Base

	name      string
	birthDate time.Time
	email     valueobject.Email
}

func (c *Customer) Name() string             { return c.name }
func (c *Customer) BirthDate() time.Time     { return c.birthDate }
func (c *Customer) Email() valueobject.Email { return c.email }

// RegisterNew validates every field and returns the customer only when all
// of them are accepted.
func RegisterNew(info execinfo.Info, name string, birthDate time.Time, email valueobject.Email) outcome.Envelope[*Customer] {
	return entity.RegisterNew(info,
		func() *Customer { return &Customer{} },
		func(_ execinfo.Info, c *Customer) outcome.Outcome {
			return outcome.Combine(
				c.changeName(name),
				c.changeBirthDate(birthDate),
				c.changeEmail(email),
			)
		},
	)
}

// FromExisting rebuilds a stored customer. The customer is always returned;
// the status reports whether the stored data is still valid.
func FromExisting(info valueobject.EntityInfo, name string, birthDate time.Time, email valueobject.Email) outcome.Envelope[*Customer] {
	c := &Customer{name: name, birthDate: birthDate, email: email}
	return entity.FromExisting(c, info)
}

// ValidateInternal checks the stored fields.
func (c *Customer) ValidateInternal() outcome.Outcome {
	return outcome.Combine(
		validateName(c.name),
		validateBirthDate(c.birthDate),
		validateEmail(c.email),
	)
}

// ChangeName replaces the name and stamps the modification.
func (c *Customer) ChangeName(info execinfo.Info, name string) outcome.Outcome {
	return c.modify(info, c.changeName(name))
}

// ChangeBirthDate replaces the birth date and stamps the modification.
func (c *Customer) ChangeBirthDate(info execinfo.Info, birthDate time.Time) outcome.Outcome {
	return c.modify(info, c.changeBirthDate(birthDate))
}

// ChangeEmail replaces the e-mail address and stamps the modification.
func (c *Customer) ChangeEmail(info execinfo.Info, email valueobject.Email) outcome.Outcome {
	return c.modify(info, c.changeEmail(email))
}

func (c *Customer) modify(info execinfo.Info, res outcome.Outcome) outcome.Outcome {
	if res.IsSuccess() {
		entity.RegisterModification(c, info)
	}
	return res
}

func (c *Customer) changeName(name string) outcome.Outcome {
	if res := validateName(name); !res.IsSuccess() {
		return res
	}
	c.name = name
	return outcome.Ok()
}

func (c *Customer) changeBirthDate(birthDate time.Time) outcome.Outcome {
	if res := validateBirthDate(birthDate); !res.IsSuccess() {
		return res
	}
	c.birthDate = valueobject.DateTimeFrom(birthDate).Date()
	return outcome.Ok()
}

func (c *Customer) changeEmail(email valueobject.Email) outcome.Outcome {
	if res := validateEmail(email); !res.IsSuccess() {
		return res
	}
	c.email = email
	return outcome.Ok()
}

func validateName(name string) outcome.Outcome {
	switch {
	case strings.TrimSpace(name) == "":
		return outcome.FailCode(CodeNameRequired, "Name is required")
	case utf8.RuneCountInString(name) > NameMaxLength:
		return outcome.FailCode(CodeNameMaxLength, fmt.Sprintf("Name should have at most %d characters", NameMaxLength))
	}
	return outcome.Ok()
}

func validateBirthDate(birthDate time.Time) outcome.Outcome {
	if valueobject.DateTimeFrom(birthDate).Date().After(valueobject.Now().Date()) {
		return outcome.FailCode(CodeBirthDateInFuture, "Birth date should be less than current date")
	}
	return outcome.Ok()
}

func validateEmail(email valueobject.Email) outcome.Outcome {
	if !email.Valid() {
		return outcome.FailCode(CodeEmailInvalid, "Email address should be valid")
	}
	return outcome.Ok()
}
