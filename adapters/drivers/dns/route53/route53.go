// Package route53 implements the DNS control-plane driver for AWS
// Route 53. Listings return the first page only; the truncated flag is
// passed through for the engine to act on.
package route53

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	dnsdrv "github.com/zoneup/zoneup/adapters/drivers/dns"
	"github.com/zoneup/zoneup/domain/model"
)

const driverName = "route53"

func init() {
	dnsdrv.Register(driverName, New)
}

type driver struct {
	client *route53.Client
}

// New creates a Route 53 driver. Credentials and region come from the
// default AWS config chain; a "region" setting overrides the region.
func New(settings map[string]string) (dnsdrv.Driver, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region := settings["region"]; region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &driver{client: route53.NewFromConfig(cfg)}, nil
}

func (d *driver) ID() string { return driverName }

func (d *driver) ListZones(ctx context.Context) ([]*model.Zone, bool, error) {
	out, err := d.client.ListHostedZones(ctx, &route53.ListHostedZonesInput{})
	if err != nil {
		return nil, false, fmt.Errorf("list hosted zones: %w", err)
	}
	zones := make([]*model.Zone, 0, len(out.HostedZones))
	for _, hz := range out.HostedZones {
		zones = append(zones, toZone(hz))
	}
	return zones, out.IsTruncated, nil
}

func (d *driver) ListRecordSets(ctx context.Context, zoneID string) ([]*model.RecordSet, bool, error) {
	out, err := d.client.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
	})
	if err != nil {
		return nil, false, fmt.Errorf("list record sets of %s: %w", zoneID, err)
	}
	records := make([]*model.RecordSet, 0, len(out.ResourceRecordSets))
	for _, rrs := range out.ResourceRecordSets {
		if rrs.AliasTarget != nil {
			// Alias record sets have no record body of their own and
			// cannot be round-tripped through model.RecordSet.
			continue
		}
		records = append(records, toRecordSet(rrs))
	}
	return records, out.IsTruncated, nil
}

func (d *driver) SubmitChanges(ctx context.Context, zoneID string, changes []model.Change, comment string) (*model.ChangeInfo, error) {
	batch := &r53types.ChangeBatch{Changes: make([]r53types.Change, 0, len(changes))}
	if comment != "" {
		batch.Comment = aws.String(comment)
	}
	for _, ch := range changes {
		batch.Changes = append(batch.Changes, r53types.Change{
			Action:            r53types.ChangeAction(ch.Action),
			ResourceRecordSet: toResourceRecordSet(ch.RecordSet),
		})
	}
	out, err := d.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch:  batch,
	})
	if err != nil {
		return nil, fmt.Errorf("change record sets of %s: %w", zoneID, err)
	}
	return &model.ChangeInfo{
		ID:     aws.ToString(out.ChangeInfo.Id),
		Status: model.ChangeStatus(out.ChangeInfo.Status),
	}, nil
}

func (d *driver) ChangeStatus(ctx context.Context, changeID string) (model.ChangeStatus, error) {
	out, err := d.client.GetChange(ctx, &route53.GetChangeInput{Id: aws.String(changeID)})
	if err != nil {
		return "", fmt.Errorf("get change %s: %w", changeID, err)
	}
	return model.ChangeStatus(out.ChangeInfo.Status), nil
}

func toZone(hz r53types.HostedZone) *model.Zone {
	zone := &model.Zone{
		ID:   aws.ToString(hz.Id),
		Name: aws.ToString(hz.Name),
	}
	if hz.Config != nil {
		zone.Private = hz.Config.PrivateZone
	}
	return zone
}

func toRecordSet(rrs r53types.ResourceRecordSet) *model.RecordSet {
	values := make([]string, 0, len(rrs.ResourceRecords))
	for _, rr := range rrs.ResourceRecords {
		values = append(values, aws.ToString(rr.Value))
	}
	return &model.RecordSet{
		Name:   aws.ToString(rrs.Name),
		Type:   model.RecordType(rrs.Type),
		TTL:    aws.ToInt64(rrs.TTL),
		Values: values,
	}
}

func toResourceRecordSet(rs model.RecordSet) *r53types.ResourceRecordSet {
	records := make([]r53types.ResourceRecord, 0, len(rs.Values))
	for _, v := range rs.Values {
		records = append(records, r53types.ResourceRecord{Value: aws.String(v)})
	}
	return &r53types.ResourceRecordSet{
		Name:            aws.String(rs.Name),
		Type:            r53types.RRType(rs.Type),
		TTL:             aws.Int64(rs.TTL),
		ResourceRecords: records,
	}
}

var _ dnsdrv.Driver = (*driver)(nil)
