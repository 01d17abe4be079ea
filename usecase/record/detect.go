package record

import (
	"net/netip"
	"strings"

	"github.com/zoneup/zoneup/domain/model"
)

// DetectRecordType infers the record type from resolved values: all
// IPv4 addresses yield A, all IPv6 yield AAAA, anything else (parse
// failure or a mixed-family set) falls back to TXT. Total function,
// no failure path.
func DetectRecordType(values []string) model.RecordType {
	if len(values) == 0 {
		return model.RecordTypeTXT
	}
	allV4, allV6 := true, true
	for _, v := range values {
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return model.RecordTypeTXT
		}
		if addr.Is4() {
			allV6 = false
		} else {
			allV4 = false
		}
	}
	switch {
	case allV4:
		return model.RecordTypeA
	case allV6:
		return model.RecordTypeAAAA
	}
	return model.RecordTypeTXT
}

// quoteTXTValues encloses each value in double quotes as the control
// plane requires for TXT records. Already-quoted values pass through
// unchanged, so the operation is idempotent.
func quoteTXTValues(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
			out[i] = v
			continue
		}
		out[i] = `"` + v + `"`
	}
	return out
}
