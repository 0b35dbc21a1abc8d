// Package entity provides the bookkeeping shared by aggregates: entity
// info, validity tracking and the registration flow that only materialises
// an aggregate when every component validation succeeds.
//
// Aggregates embed Base and implement ValidateInternal:
//
//	type Customer struct {
//		entity.Base
//		name string
//	}
//
//	func (c *Customer) ValidateInternal() outcome.Outcome { ... }
package entity

import (
	"strings"

	"github.com/google/uuid"

	outcome "github.com/xgx-io/xgx-outcome"
	"github.com/xgx-io/xgx-outcome/execinfo"
	"github.com/xgx-io/xgx-outcome/valueobject"
)

// Message codes reported by ValidateEntityInfo.
const (
	CodeIDRequired                   = "EntityBase.EntityInfo.Id.IsRequired"
	CodeRegistryVersionRequired      = "EntityBase.EntityInfo.RegistryVersion.IsRequired"
	CodeCreatedByRequired            = "EntityBase.EntityInfo.AuditableInfo.CreatedBy.IsRequired"
	CodeCreatedAtRequired            = "EntityBase.EntityInfo.AuditableInfo.CreatedAt.IsRequired"
	CodeLastOriginRequired           = "EntityBase.EntityInfo.AuditableInfo.LastOrigin.IsRequired"
	CodeLastBusinessFlowCodeRequired = "EntityBase.EntityInfo.AuditableInfo.LastBusinessFlowCode.IsRequired"
	CodeLastCorrelationIDRequired    = "EntityBase.EntityInfo.AuditableInfo.LastCorrelationId.IsRequired"
	CodeLastModifiedIncomplete       = "EntityBase.EntityInfo.AuditableInfo.LastModifiedInfo.IsRequired.WithAllValues"
)

// Base is embedded by aggregates.
type Base struct {
	info  valueobject.EntityInfo
	valid bool
}

func (b *Base) EntityInfo() valueobject.EntityInfo { return b.info }

// IsValid reports the result of the last Validate call.
func (b *Base) IsValid() bool { return b.valid }

func (b *Base) entityBase() *Base { return b }

// Entity is satisfied by any pointer to a struct embedding Base that also
// validates its own fields.
type Entity interface {
	entityBase() *Base
	ValidateInternal() outcome.Outcome
}

// Validate merges entity-info validation with the aggregate's own checks and
// records whether the entity is valid.
func Validate(e Entity) outcome.Outcome {
	b := e.entityBase()
	res := outcome.Combine(ValidateEntityInfo(b.info), e.ValidateInternal())
	b.valid = res.IsSuccess()
	return res
}

// RegisterNew builds a new aggregate. factory allocates it, handler applies
// the caller's field changes; the aggregate is returned only when entity
// info, handler and the aggregate's own validation all succeed.
func RegisterNew[E Entity](
	info execinfo.Info,
	factory func() E,
	handler func(execinfo.Info, E) outcome.Outcome,
) outcome.Envelope[E] {
	e := factory()
	infoEnv := valueobject.RegisterEntityInfo(info)
	handled := handler(info, e)

	var res outcome.Outcome
	if infoEnv.IsSuccess() {
		res = outcome.Combine(infoEnv, ValidateEntityInfo(infoEnv.Value()), handled)
	} else {
		res = outcome.Combine(infoEnv, handled)
	}
	if !res.IsSuccess() {
		return outcome.Typed[E](res)
	}

	e.entityBase().info = infoEnv.Value()
	if v := Validate(e); !v.IsSuccess() {
		return outcome.Typed[E](outcome.Combine(res, v))
	}
	return outcome.MergeSuccess(e, res)
}

// FromExisting attaches stored entity info to e and validates it. The
// aggregate is always returned; the status reflects validation.
func FromExisting[E Entity](e E, info valueobject.EntityInfo) outcome.Envelope[E] {
	e.entityBase().info = info
	return outcome.Merge(e, Validate(e))
}

// RegisterModification stamps info on e's audit data and bumps its registry
// version.
func RegisterModification(e Entity, info execinfo.Info) {
	b := e.entityBase()
	b.info = b.info.RegisterModification(info)
}

// ValidateEntityInfo checks that identity and audit data are complete.
func ValidateEntityInfo(info valueobject.EntityInfo) outcome.Outcome {
	var msgs []outcome.Message
	add := func(code, description string) {
		msgs = append(msgs, outcome.ErrorMessage(code, description))
	}

	audit := info.AuditableInfo()
	if info.ID().IsZero() {
		add(CodeIDRequired, "EntityInfo.Id should be valid")
	}
	if info.RegistryVersion().IsZero() {
		add(CodeRegistryVersionRequired, "EntityInfo.RegistryVersion should be valid")
	}
	if blank(audit.CreatedBy()) {
		add(CodeCreatedByRequired, "EntityInfo.AuditableInfo.CreatedBy should be valid")
	}
	if audit.CreatedAt().IsZero() {
		add(CodeCreatedAtRequired, "EntityInfo.AuditableInfo.CreatedAt should be valid")
	}
	if blank(audit.LastOrigin()) {
		add(CodeLastOriginRequired, "EntityInfo.AuditableInfo.LastOrigin should be valid")
	}
	if blank(audit.LastBusinessFlowCode()) {
		add(CodeLastBusinessFlowCodeRequired, "EntityInfo.AuditableInfo.LastBusinessFlowCode should be valid")
	}
	if audit.LastCorrelationID() == uuid.Nil {
		add(CodeLastCorrelationIDRequired, "EntityInfo.AuditableInfo.LastCorrelationId should be valid")
	}
	hasBy := !blank(audit.LastModifiedBy())
	hasAt := !audit.LastModifiedAt().IsZero()
	if hasBy != hasAt {
		add(CodeLastModifiedIncomplete, "EntityInfo.AuditableInfo.LastModifiedInfo is required with all values")
	}

	if len(msgs) > 0 {
		return outcome.Fail(msgs...)
	}
	return outcome.Ok()
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
