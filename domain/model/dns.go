package model

import "fmt"

// RecordType represents provider-agnostic DNS record types. Values not
// listed here are passed through to the control plane untouched.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeCAA   RecordType = "CAA"
)

// RecordSet describes a single DNS record set identified by name and type.
type RecordSet struct {
	Name   string     // Absolute FQDN with trailing dot.
	Type   RecordType //
	TTL    int64      // TTL in seconds.
	Values []string   // Presentation-format record values.
}

// Zone is an immutable snapshot of a hosted zone as returned by the
// control plane. Zones are fetched fresh per invocation, never cached.
type Zone struct {
	ID      string // Opaque control-plane identifier.
	Name    string // Absolute FQDN with trailing dot.
	Private bool   // True for private (VPC/VNet scoped) zones.
}

// ZoneVisibility governs the filter applied during zone discovery.
type ZoneVisibility string

const (
	ZoneVisibilityPreferPublic ZoneVisibility = "prefer-public"
	ZoneVisibilityPublic       ZoneVisibility = "public"
	ZoneVisibilityPrivate      ZoneVisibility = "private"
)

// ParseZoneVisibility converts a CLI/config string to a ZoneVisibility.
// The empty string maps to the prefer-public default.
func ParseZoneVisibility(s string) (ZoneVisibility, error) {
	switch ZoneVisibility(s) {
	case ZoneVisibilityPreferPublic, ZoneVisibilityPublic, ZoneVisibilityPrivate:
		return ZoneVisibility(s), nil
	case "":
		return ZoneVisibilityPreferPublic, nil
	}
	return "", fmt.Errorf("invalid zone visibility %q (supported: prefer-public, public, private)", s)
}

// AddressKind selects which instance address to request from the
// instance metadata service.
type AddressKind string

const (
	AddressKindPublic  AddressKind = "public"
	AddressKindPrivate AddressKind = "private"
)

// ParseAddressKind converts a CLI/config string to an AddressKind.
// The empty string maps to the public default.
func ParseAddressKind(s string) (AddressKind, error) {
	switch AddressKind(s) {
	case AddressKindPublic, AddressKindPrivate:
		return AddressKind(s), nil
	case "":
		return AddressKindPublic, nil
	}
	return "", fmt.Errorf("invalid address type %q (supported: public, private)", s)
}

// ValueSource names a metadata probe used to discover record values.
type ValueSource string

const (
	ValueSourceAuto        ValueSource = "auto"
	ValueSourceEC2Metadata ValueSource = "ec2-metadata"
	ValueSourceECSMetadata ValueSource = "ecs-metadata"
)

// ParseValueSource converts a CLI/config string to a ValueSource.
// The empty string maps to the empty ValueSource (no probe requested).
func ParseValueSource(s string) (ValueSource, error) {
	switch ValueSource(s) {
	case ValueSourceAuto, ValueSourceEC2Metadata, ValueSourceECSMetadata, "":
		return ValueSource(s), nil
	}
	return "", fmt.Errorf("invalid value source %q (supported: auto, ec2-metadata, ecs-metadata)", s)
}

// ChangeAction is the operation applied to a record set within a change batch.
type ChangeAction string

const (
	ChangeActionUpsert ChangeAction = "UPSERT"
	ChangeActionDelete ChangeAction = "DELETE"
)

// Change pairs an action with the record set it applies to. Deletes must
// carry the full current record body or the control plane rejects them.
type Change struct {
	Action    ChangeAction
	RecordSet RecordSet
}

// ChangeStatus is the propagation state of a submitted change batch.
type ChangeStatus string

const (
	ChangeStatusPending ChangeStatus = "PENDING"
	ChangeStatusInsync  ChangeStatus = "INSYNC"
)

// ChangeInfo identifies a submitted change batch for status polling.
type ChangeInfo struct {
	ID     string
	Status ChangeStatus
}
