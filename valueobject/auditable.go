package valueobject

import (
	"github.com/google/uuid"

	"github.com/xgx-io/xgx-outcome/execinfo"
)

// AuditableInfo records who created an entity and who touched it last.
// LastModifiedBy and LastModifiedAt are either both set or both empty.
type AuditableInfo struct {
	createdBy            string
	createdAt            DateTime
	lastModifiedBy       string
	lastModifiedAt       DateTime
	lastCorrelationID    uuid.UUID
	lastBusinessFlowCode string
	lastOrigin           string
}

// NewAuditableInfo stamps creation data from info.
func NewAuditableInfo(info execinfo.Info) AuditableInfo {
	return AuditableInfo{
		createdBy:            info.User,
		createdAt:            Now(),
		lastCorrelationID:    info.CorrelationID,
		lastBusinessFlowCode: info.BusinessFlowCode,
		lastOrigin:           info.Origin,
	}
}

// AuditableInfoFrom rebuilds stored audit data. A zero lastModifiedAt means
// the entity was never modified.
func AuditableInfoFrom(
	createdBy string,
	createdAt DateTime,
	lastModifiedBy string,
	lastModifiedAt DateTime,
	lastCorrelationID uuid.UUID,
	lastBusinessFlowCode string,
	lastOrigin string,
) AuditableInfo {
	return AuditableInfo{
		createdBy:            createdBy,
		createdAt:            createdAt,
		lastModifiedBy:       lastModifiedBy,
		lastModifiedAt:       lastModifiedAt,
		lastCorrelationID:    lastCorrelationID,
		lastBusinessFlowCode: lastBusinessFlowCode,
		lastOrigin:           lastOrigin,
	}
}

// RegisterModification returns a copy stamped with info as the last
// modification.
func (a AuditableInfo) RegisterModification(info execinfo.Info) AuditableInfo {
	a.lastModifiedBy = info.User
	a.lastModifiedAt = Now()
	a.lastCorrelationID = info.CorrelationID
	a.lastBusinessFlowCode = info.BusinessFlowCode
	a.lastOrigin = info.Origin
	return a
}

func (a AuditableInfo) CreatedBy() string            { return a.createdBy }
func (a AuditableInfo) CreatedAt() DateTime          { return a.createdAt }
func (a AuditableInfo) LastModifiedBy() string       { return a.lastModifiedBy }
func (a AuditableInfo) LastModifiedAt() DateTime     { return a.lastModifiedAt }
func (a AuditableInfo) LastCorrelationID() uuid.UUID { return a.lastCorrelationID }
func (a AuditableInfo) LastBusinessFlowCode() string { return a.lastBusinessFlowCode }
func (a AuditableInfo) LastOrigin() string           { return a.lastOrigin }

// Modified reports whether a modification was ever registered.
func (a AuditableInfo) Modified() bool {
	return a.lastModifiedBy != "" || !a.lastModifiedAt.IsZero()
}

func (a AuditableInfo) Equal(o AuditableInfo) bool {
	return a.createdBy == o.createdBy &&
		a.createdAt.Equal(o.createdAt) &&
		a.lastModifiedBy == o.lastModifiedBy &&
		a.lastModifiedAt.Equal(o.lastModifiedAt) &&
		a.lastCorrelationID == o.lastCorrelationID &&
		a.lastBusinessFlowCode == o.lastBusinessFlowCode &&
		a.lastOrigin == o.lastOrigin
}
