package rdb

import "time"

// JournalEntryRecord is the RDB persistence model for domain JournalEntry.
// Table name: journal_entries
type JournalEntryRecord struct {
	ID         string    `gorm:"primaryKey;type:text;not null"`
	ZoneID     string    `gorm:"type:text;not null"`
	ZoneName   string    `gorm:"type:text;not null"`
	Action     string    `gorm:"type:text;not null"`
	RecordName string    `gorm:"type:text;not null"`
	RecordType string    `gorm:"type:text;not null"`
	TTL        int64     `gorm:"not null"`
	Values     string    `gorm:"type:text"` // JSON encoded []string
	ChangeID   string    `gorm:"type:text"`
	Status     string    `gorm:"type:text"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (JournalEntryRecord) TableName() string { return "journal_entries" }
