package valueobject

import (
	outcome "github.com/xgx-io/xgx-outcome"
	"github.com/xgx-io/xgx-outcome/execinfo"
)

// EntityInfo is the identity and bookkeeping shared by every entity.
type EntityInfo struct {
	id        ID
	auditable AuditableInfo
	version   RegistryVersion
}

// RegisterEntityInfo allocates identity, audit data and a first registry
// version for a new entity.
func RegisterEntityInfo(info execinfo.Info) outcome.Envelope[EntityInfo] {
	return outcome.Success(EntityInfo{
		id:        NewID(),
		auditable: NewAuditableInfo(info),
		version:   NewRegistryVersion(),
	}, nil, nil)
}

// EntityInfoFrom rebuilds stored entity info.
func EntityInfoFrom(id ID, auditable AuditableInfo, version RegistryVersion) EntityInfo {
	return EntityInfo{id: id, auditable: auditable, version: version}
}

// RegisterModification stamps a modification and bumps the registry version.
func (e EntityInfo) RegisterModification(info execinfo.Info) EntityInfo {
	e.auditable = e.auditable.RegisterModification(info)
	next := NewRegistryVersion()
	if next.value <= e.version.value {
		next.value = e.version.value + 1
	}
	e.version = next
	return e
}

func (e EntityInfo) ID() ID                           { return e.id }
func (e EntityInfo) AuditableInfo() AuditableInfo     { return e.auditable }
func (e EntityInfo) RegistryVersion() RegistryVersion { return e.version }

func (e EntityInfo) Equal(o EntityInfo) bool {
	return e.id.Equal(o.id) && e.auditable.Equal(o.auditable) && e.version == o.version
}
