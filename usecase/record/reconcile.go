package record

import (
	"github.com/zoneup/zoneup/domain/model"
	"github.com/zoneup/zoneup/internal/dnsname"
)

// DefaultTTL is used when no explicit TTL is given and no existing
// record of the same name and type exists (5 minutes).
const DefaultTTL = 300

// resolveTTL returns the explicit TTL when given, else the TTL of an
// existing record with matching name and type, else the caller's
// fallback, else DefaultTTL.
func resolveTTL(records []*model.RecordSet, name string, rtype model.RecordType, explicit, fallback int64) int64 {
	if explicit > 0 {
		return explicit
	}
	for _, r := range records {
		if dnsname.Equal(r.Name, name) && r.Type == rtype {
			return r.TTL
		}
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultTTL
}

// conflictingRecords selects existing records at the target name whose
// type cannot coexist with the target type: A, AAAA and CNAME are
// mutually exclusive, and a CNAME target displaces all three, its own
// type included, since a CNAME tolerates no neighbor at the same name.
func conflictingRecords(records []*model.RecordSet, name string, rtype model.RecordType) []*model.RecordSet {
	var out []*model.RecordSet
	for _, r := range records {
		if !dnsname.Equal(r.Name, name) {
			continue
		}
		switch r.Type {
		case model.RecordTypeA, model.RecordTypeAAAA, model.RecordTypeCNAME:
		default:
			continue
		}
		if r.Type != rtype || rtype == model.RecordTypeCNAME {
			out = append(out, r)
		}
	}
	return out
}

// deleteChanges wraps records in delete operations carrying their full
// existing definition, as the control plane requires.
func deleteChanges(records []*model.RecordSet) []model.Change {
	changes := make([]model.Change, 0, len(records))
	for _, r := range records {
		changes = append(changes, model.Change{Action: model.ChangeActionDelete, RecordSet: *r})
	}
	return changes
}
