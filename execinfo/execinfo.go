// Package execinfo carries the per-request execution context (who, which
// flow, from where) that domain operations record in audit data.
package execinfo

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	outcome "github.com/xgx-io/xgx-outcome"
)

// Message codes reported by New.
const (
	CodeCorrelationIDRequired    = "ExecutionInfo.CorrelationId.IsRequired"
	CodeUserRequired             = "ExecutionInfo.ExecutionUser.IsRequired"
	CodeBusinessFlowCodeRequired = "ExecutionInfo.BusinessFlowCode.IsRequired"
	CodeOriginRequired           = "ExecutionInfo.Origin.IsRequired"
	CodeLanguageRequired         = "ExecutionInfo.Language.IsRequired"
)

// fieldMessages maps struct fields to the error message reported when the
// field fails validation.
var fieldMessages = map[string]outcome.Message{
	"CorrelationID":    outcome.ErrorMessage(CodeCorrelationIDRequired, "CorrelationId is required."),
	"User":             outcome.ErrorMessage(CodeUserRequired, "ExecutionUser is required."),
	"BusinessFlowCode": outcome.ErrorMessage(CodeBusinessFlowCodeRequired, "BusinessFlowCode is required."),
	"Origin":           outcome.ErrorMessage(CodeOriginRequired, "Origin is required."),
	"Language":         outcome.ErrorMessage(CodeLanguageRequired, "Language is required."),
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Info identifies one execution. Build it with New or Forced.
type Info struct {
	CorrelationID    uuid.UUID `validate:"required"`
	User             string    `validate:"notblank"`
	BusinessFlowCode string    `validate:"notblank"`
	Origin           string    `validate:"notblank"`
	Language         string    `validate:"notblank"`

	valid bool
}

// Valid reports whether every field passed validation when the Info was
// built.
func (i Info) Valid() bool { return i.valid }

// New validates the fields and returns a successful envelope holding the
// Info, or an error envelope with one message per missing field.
func New(correlationID uuid.UUID, user, businessFlowCode, origin, language string) outcome.Envelope[Info] {
	info := Info{
		CorrelationID:    correlationID,
		User:             user,
		BusinessFlowCode: businessFlowCode,
		Origin:           origin,
		Language:         language,
	}
	if res := check(info); !res.IsSuccess() {
		return outcome.Typed[Info](res)
	}
	info.valid = true
	return outcome.Success(info, nil, nil)
}

// Forced builds an Info even when fields are missing; Valid records the
// result of validation.
func Forced(correlationID uuid.UUID, user, businessFlowCode, origin, language string) Info {
	info := Info{
		CorrelationID:    correlationID,
		User:             user,
		BusinessFlowCode: businessFlowCode,
		Origin:           origin,
		Language:         language,
	}
	info.valid = check(info).IsSuccess()
	return info
}

func check(info Info) outcome.Outcome {
	err := validate.Struct(info)
	if err == nil {
		return outcome.Ok()
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return outcome.FailureFromFault(err, outcome.Unit{}, "ExecutionInfo.Invalid", "")
	}
	msgs := make([]outcome.Message, 0, len(verrs))
	for _, fe := range verrs {
		if m, ok := fieldMessages[fe.StructField()]; ok {
			msgs = append(msgs, m)
		}
	}
	return outcome.Fail(msgs...)
}
