// Package record implements the record reconciliation engine: it turns
// a partially-specified desired record (name, optional type, optional
// value source, optional TTL) into a safe change batch against the
// authoritative DNS control plane.
package record

import (
	"github.com/zoneup/zoneup/domain"
	"github.com/zoneup/zoneup/domain/model"
)

// UseCase provides application logic for record reconciliation.
type UseCase struct {
	Port    model.DNSPort         // authoritative control plane
	Source  model.ValueSourcePort // metadata probes and URL fetch
	Journal domain.JournalRepository
}

// UpdateInput holds parameters for one reconciliation run.
type UpdateInput struct {
	ZoneID         string               `json:"zone_id,omitempty"`   // explicit zone, skips discovery
	ZoneName       string               `json:"zone_name,omitempty"` // anchors discovery, conflicts with ZoneID
	ZoneVisibility model.ZoneVisibility `json:"zone_visibility,omitempty"`
	RecordName     string               `json:"record_name"`           // required
	RecordType     model.RecordType     `json:"record_type,omitempty"` // empty = auto-detect from values
	Values         []string             `json:"values,omitempty"`
	ValueFrom      model.ValueSource    `json:"value_from,omitempty"`
	ValueFromURL   string               `json:"value_from_url,omitempty"`
	AddressKind    model.AddressKind    `json:"address_kind,omitempty"`
	TTL            int64                `json:"ttl,omitempty"`         // 0 = copy existing or default
	DefaultTTL     int64                `json:"default_ttl,omitempty"` // fallback when no existing record matches (0 = 300)
	Comment        string               `json:"comment,omitempty"`
	Wait           bool                 `json:"wait,omitempty"`
	Clear          bool                 `json:"clear,omitempty"`
	DryRun         bool                 `json:"dry_run,omitempty"`
}

// UpdateOutput holds the result of one reconciliation run.
type UpdateOutput struct {
	Zone    *model.Zone        `json:"zone"`
	Record  model.RecordSet    `json:"record"`
	Deleted []*model.RecordSet `json:"deleted,omitempty"`
	Change  *model.ChangeInfo  `json:"change,omitempty"` // nil on dry run
	DryRun  bool               `json:"dry_run,omitempty"`
}

// HistoryInput holds parameters for journal listing.
type HistoryInput struct {
	Limit int `json:"limit,omitempty"`
}

// HistoryOutput holds the journal entries, most recent first.
type HistoryOutput struct {
	Entries []*model.JournalEntry `json:"entries"`
}
