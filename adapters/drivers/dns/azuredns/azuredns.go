// Package azuredns implements the DNS control-plane driver for Azure
// DNS zones. The Azure API applies record operations synchronously, so
// change batches are applied as sequential per-record calls, change IDs
// are generated locally, and propagation status is always INSYNC.
package azuredns

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"
	"github.com/google/uuid"
	dnsdrv "github.com/zoneup/zoneup/adapters/drivers/dns"
	"github.com/zoneup/zoneup/domain/model"
	"github.com/zoneup/zoneup/internal/dnsname"
)

const driverName = "azuredns"

func init() {
	dnsdrv.Register(driverName, New)
}

type driver struct {
	zones         *armdns.ZonesClient
	records       *armdns.RecordSetsClient
	resourceGroup string
}

// New creates an Azure DNS driver. Required settings: subscription_id
// and resource_group. Credentials come from the default Azure chain.
func New(settings map[string]string) (dnsdrv.Driver, error) {
	subscription := settings["subscription_id"]
	resourceGroup := settings["resource_group"]
	if subscription == "" || resourceGroup == "" {
		return nil, fmt.Errorf("azuredns driver requires subscription_id and resource_group settings")
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("create Azure credential: %w", err)
	}
	zones, err := armdns.NewZonesClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create DNS zones client: %w", err)
	}
	records, err := armdns.NewRecordSetsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create DNS record sets client: %w", err)
	}
	return &driver{zones: zones, records: records, resourceGroup: resourceGroup}, nil
}

func (d *driver) ID() string { return driverName }

func (d *driver) ListZones(ctx context.Context) ([]*model.Zone, bool, error) {
	pager := d.zones.NewListByResourceGroupPager(d.resourceGroup, nil)
	if !pager.More() {
		return nil, false, nil
	}
	page, err := pager.NextPage(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list DNS zones: %w", err)
	}
	zones := make([]*model.Zone, 0, len(page.Value))
	for _, z := range page.Value {
		if z == nil || z.ID == nil || z.Name == nil {
			continue
		}
		private := z.Properties != nil && z.Properties.ZoneType != nil && *z.Properties.ZoneType == armdns.ZoneTypePrivate
		zones = append(zones, &model.Zone{
			ID:      *z.ID,
			Name:    dnsname.Normalize(*z.Name),
			Private: private,
		})
	}
	return zones, pager.More(), nil
}

func (d *driver) ListRecordSets(ctx context.Context, zoneID string) ([]*model.RecordSet, bool, error) {
	zoneName, err := zoneNameFromID(zoneID)
	if err != nil {
		return nil, false, err
	}
	pager := d.records.NewListByDNSZonePager(d.resourceGroup, zoneName, nil)
	if !pager.More() {
		return nil, false, nil
	}
	page, err := pager.NextPage(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list record sets of zone %s: %w", zoneName, err)
	}
	records := make([]*model.RecordSet, 0, len(page.Value))
	for _, rs := range page.Value {
		converted := toRecordSet(rs, zoneName)
		if converted != nil {
			records = append(records, converted)
		}
	}
	return records, pager.More(), nil
}

func (d *driver) SubmitChanges(ctx context.Context, zoneID string, changes []model.Change, comment string) (*model.ChangeInfo, error) {
	zoneName, err := zoneNameFromID(zoneID)
	if err != nil {
		return nil, err
	}
	for _, ch := range changes {
		rs := ch.RecordSet
		relName := relativeRecordName(rs.Name, zoneName)
		recordType := armdns.RecordType(rs.Type)
		switch ch.Action {
		case model.ChangeActionUpsert:
			properties, err := recordSetProperties(rs)
			if err != nil {
				return nil, err
			}
			_, err = d.records.CreateOrUpdate(ctx, d.resourceGroup, zoneName, relName, recordType, armdns.RecordSet{Properties: properties}, nil)
			if err != nil {
				return nil, fmt.Errorf("create/update %s record %s: %w", rs.Type, rs.Name, err)
			}
		case model.ChangeActionDelete:
			_, err := d.records.Delete(ctx, d.resourceGroup, zoneName, relName, recordType, nil)
			if err != nil {
				return nil, fmt.Errorf("delete %s record %s: %w", rs.Type, rs.Name, err)
			}
		default:
			return nil, fmt.Errorf("unsupported change action: %s", ch.Action)
		}
	}
	return &model.ChangeInfo{ID: uuid.NewString(), Status: model.ChangeStatusInsync}, nil
}

func (d *driver) ChangeStatus(ctx context.Context, changeID string) (model.ChangeStatus, error) {
	return model.ChangeStatusInsync, nil
}

// zoneNameFromID extracts the zone name from an ARM DNS zone resource ID.
func zoneNameFromID(zoneID string) (string, error) {
	rid, err := arm.ParseResourceID(zoneID)
	if err != nil {
		return "", fmt.Errorf("parse DNS zone resource ID: %w", err)
	}
	if !strings.EqualFold(rid.ResourceType.Namespace, "Microsoft.Network") ||
		!strings.EqualFold(rid.ResourceType.Type, "dnszones") {
		return "", fmt.Errorf("invalid resource type for DNS zone: expected Microsoft.Network/dnszones, got %s/%s",
			rid.ResourceType.Namespace, rid.ResourceType.Type)
	}
	return rid.Name, nil
}

// relativeRecordName converts an absolute record name to the
// zone-relative form the Azure API expects. Apex records become "@".
func relativeRecordName(fqdn string, zoneName string) string {
	fqdn = dnsname.Trim(fqdn)
	zoneName = dnsname.Trim(zoneName)
	if strings.EqualFold(fqdn, zoneName) {
		return "@"
	}
	if suffix := "." + zoneName; len(fqdn) > len(suffix) && strings.EqualFold(fqdn[len(fqdn)-len(suffix):], suffix) {
		return fqdn[:len(fqdn)-len(suffix)]
	}
	return fqdn
}

// absoluteRecordName is the inverse of relativeRecordName.
func absoluteRecordName(relName string, zoneName string) string {
	zoneName = dnsname.Normalize(zoneName)
	if relName == "@" || relName == "" {
		return zoneName
	}
	return relName + "." + zoneName
}

// recordSetProperties builds the typed record body of an upsert.
func recordSetProperties(rs model.RecordSet) (*armdns.RecordSetProperties, error) {
	properties := &armdns.RecordSetProperties{TTL: to.Ptr(rs.TTL)}
	switch rs.Type {
	case model.RecordTypeA:
		properties.ARecords = make([]*armdns.ARecord, 0, len(rs.Values))
		for _, v := range rs.Values {
			properties.ARecords = append(properties.ARecords, &armdns.ARecord{IPv4Address: to.Ptr(v)})
		}
	case model.RecordTypeAAAA:
		properties.AaaaRecords = make([]*armdns.AaaaRecord, 0, len(rs.Values))
		for _, v := range rs.Values {
			properties.AaaaRecords = append(properties.AaaaRecords, &armdns.AaaaRecord{IPv6Address: to.Ptr(v)})
		}
	case model.RecordTypeCNAME:
		if len(rs.Values) != 1 {
			return nil, fmt.Errorf("CNAME record must have exactly one value, got %d", len(rs.Values))
		}
		properties.CnameRecord = &armdns.CnameRecord{Cname: to.Ptr(rs.Values[0])}
	case model.RecordTypeTXT:
		properties.TxtRecords = make([]*armdns.TxtRecord, 0, len(rs.Values))
		for _, v := range rs.Values {
			// Azure stores TXT strings unquoted.
			properties.TxtRecords = append(properties.TxtRecords, &armdns.TxtRecord{
				Value: []*string{to.Ptr(strings.Trim(v, `"`))},
			})
		}
	default:
		return nil, fmt.Errorf("unsupported record type for azuredns driver: %s", rs.Type)
	}
	return properties, nil
}

// toRecordSet converts an Azure record set to the domain model. Types
// the engine has no use for yield nil.
func toRecordSet(rs *armdns.RecordSet, zoneName string) *model.RecordSet {
	if rs == nil || rs.Name == nil || rs.Type == nil || rs.Properties == nil {
		return nil
	}
	rtype := recordTypeFromARM(*rs.Type)
	switch rtype {
	case model.RecordTypeA, model.RecordTypeAAAA, model.RecordTypeCNAME, model.RecordTypeTXT:
	default:
		return nil
	}
	out := &model.RecordSet{
		Name: absoluteRecordName(*rs.Name, zoneName),
		Type: rtype,
	}
	if rs.Properties.TTL != nil {
		out.TTL = *rs.Properties.TTL
	}
	switch out.Type {
	case model.RecordTypeA:
		for _, r := range rs.Properties.ARecords {
			if r != nil && r.IPv4Address != nil {
				out.Values = append(out.Values, *r.IPv4Address)
			}
		}
	case model.RecordTypeAAAA:
		for _, r := range rs.Properties.AaaaRecords {
			if r != nil && r.IPv6Address != nil {
				out.Values = append(out.Values, *r.IPv6Address)
			}
		}
	case model.RecordTypeCNAME:
		if rs.Properties.CnameRecord != nil && rs.Properties.CnameRecord.Cname != nil {
			out.Values = append(out.Values, *rs.Properties.CnameRecord.Cname)
		}
	case model.RecordTypeTXT:
		for _, r := range rs.Properties.TxtRecords {
			if r == nil {
				continue
			}
			chunks := make([]string, 0, len(r.Value))
			for _, c := range r.Value {
				if c != nil {
					chunks = append(chunks, *c)
				}
			}
			out.Values = append(out.Values, `"`+strings.Join(chunks, "")+`"`)
		}
	}
	return out
}

// recordTypeFromARM strips the "Microsoft.Network/dnszones/" prefix of
// an ARM record set type.
func recordTypeFromARM(armType string) model.RecordType {
	if i := strings.LastIndex(armType, "/"); i >= 0 {
		armType = armType[i+1:]
	}
	return model.RecordType(armType)
}

var _ dnsdrv.Driver = (*driver)(nil)
