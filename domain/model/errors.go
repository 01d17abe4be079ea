package model

import "errors"

var (
	ErrZoneNotFound      = errors.New("hosted zone not found")
	ErrZoneListTruncated = errors.New("zone listing truncated, pass an explicit zone id")
	ErrJournalDisabled   = errors.New("journal not configured")
)
