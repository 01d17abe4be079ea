package record

import (
	"context"
	"fmt"

	"github.com/zoneup/zoneup/domain/model"
	"github.com/zoneup/zoneup/internal/dnsname"
	"github.com/zoneup/zoneup/internal/logging"
)

// resolveZone locates the authoritative zone for recordName. With an
// explicit zone ID discovery is skipped entirely; with an explicit
// zone name only the visibility filter runs; otherwise the record name
// is climbed suffix by suffix until a zone matches.
func (u *UseCase) resolveZone(ctx context.Context, in *UpdateInput, recordName string) (*model.Zone, error) {
	if in.ZoneID != "" {
		return &model.Zone{ID: in.ZoneID}, nil
	}

	// Direct callers may leave the visibility zero-valued.
	visibility := in.ZoneVisibility
	if visibility == "" {
		visibility = model.ZoneVisibilityPreferPublic
	}

	zones, truncated, err := u.Port.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	if truncated {
		return nil, model.ErrZoneListTruncated
	}

	if in.ZoneName != "" {
		name := dnsname.Normalize(in.ZoneName)
		zone := selectZone(zonesNamed(zones, name), visibility)
		if zone == nil {
			return nil, fmt.Errorf("%w: no zone named %s", model.ErrZoneNotFound, name)
		}
		return zone, nil
	}

	for search := recordName; search != ""; search = dnsname.ParentSuffix(search) {
		if zone := selectZone(zonesNamed(zones, search), visibility); zone != nil {
			logging.FromContext(ctx).Info(ctx, "found hosted zone", "zone", zone.Name, "zone_id", zone.ID, "private", zone.Private)
			return zone, nil
		}
	}
	return nil, fmt.Errorf("%w: no zone matches any suffix of %s", model.ErrZoneNotFound, recordName)
}

// zonesNamed filters zones to those carrying exactly the given name.
func zonesNamed(zones []*model.Zone, name string) []*model.Zone {
	var out []*model.Zone
	for _, z := range zones {
		if dnsname.Equal(z.Name, name) {
			out = append(out, z)
		}
	}
	return out
}

// selectZone applies the visibility filter to same-named candidates.
// A candidate whose privacy flag matches the requested visibility wins;
// under prefer-public the first candidate of any visibility is accepted
// when no public zone exists. Strict public/private yields nil so the
// suffix climb continues upward.
func selectZone(candidates []*model.Zone, visibility model.ZoneVisibility) *model.Zone {
	wantPrivate := visibility == model.ZoneVisibilityPrivate
	for _, z := range candidates {
		if z.Private == wantPrivate {
			return z
		}
	}
	if visibility == model.ZoneVisibilityPreferPublic && len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}
