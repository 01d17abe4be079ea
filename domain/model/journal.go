package model

import "time"

// JournalEntry records one submitted record change for local history.
// A batch yields one entry per record it touched.
type JournalEntry struct {
	ID         string
	ZoneID     string
	ZoneName   string
	Action     ChangeAction
	RecordName string
	RecordType RecordType
	TTL        int64
	Values     []string
	ChangeID   string
	Status     ChangeStatus
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
