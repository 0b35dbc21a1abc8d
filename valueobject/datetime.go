package valueobject

import "time"

// DateTime is an instant normalised to UTC.
type DateTime struct {
	t time.Time
}

// Now returns the current instant.
func Now() DateTime { return DateTime{t: time.Now().UTC()} }

// DateTimeFrom wraps an existing instant.
func DateTimeFrom(t time.Time) DateTime { return DateTime{t: t.UTC()} }

// Time returns the wrapped instant.
func (d DateTime) Time() time.Time { return d.t }

// Date truncates to the calendar day (UTC midnight).
func (d DateTime) Date() time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func (d DateTime) IsZero() bool          { return d.t.IsZero() }
func (d DateTime) Equal(o DateTime) bool { return d.t.Equal(o.t) }
func (d DateTime) String() string        { return d.t.Format(time.RFC3339Nano) }

// RegistryVersion orders successive writes of the same entity. New versions
// are derived from the clock.
type RegistryVersion struct {
	value int64
}

// NewRegistryVersion returns a version stamped from the current instant.
func NewRegistryVersion() RegistryVersion {
	return RegistryVersion{value: Now().t.UnixNano()}
}

// RegistryVersionFrom wraps a stored version.
func RegistryVersionFrom(v int64) RegistryVersion { return RegistryVersion{value: v} }

func (v RegistryVersion) Int64() int64 { return v.value }
func (v RegistryVersion) IsZero() bool { return v.value == 0 }
