package model

import "context"

// DNSPort is an interface (domain port) for authoritative DNS control
// plane operations. Implementations live under adapters/drivers/dns.
//
// Listing operations return a single page plus a truncated flag; the
// engine never paginates. How callers react to truncation differs by
// operation (see usecase/record).
type DNSPort interface {
	// ListZones returns the hosted zones visible to the credentials.
	ListZones(ctx context.Context) (zones []*Zone, truncated bool, err error)

	// ListRecordSets returns the record sets of the given zone.
	ListRecordSets(ctx context.Context, zoneID string) (records []*RecordSet, truncated bool, err error)

	// SubmitChanges applies a change batch atomically to the given zone.
	SubmitChanges(ctx context.Context, zoneID string, changes []Change, comment string) (*ChangeInfo, error)

	// ChangeStatus reports the propagation state of a submitted change.
	ChangeStatus(ctx context.Context, changeID string) (ChangeStatus, error)
}
