package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zoneup/zoneup/domain/model"
	"github.com/zoneup/zoneup/internal/dnsname"
	"github.com/zoneup/zoneup/internal/logging"
)

// changePollInterval is the fixed delay between propagation polls.
// Variable so tests can shorten it.
var changePollInterval = time.Second

// Update runs the reconciliation pipeline: resolve values, detect the
// record type, locate the zone, resolve the TTL, clear conflicting
// records, submit the upsert and optionally wait for propagation.
// Every stage is fatal on error; the only retry anywhere is the
// unbounded propagation poll, cancelled via ctx.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdateInput(in); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)

	name := dnsname.Normalize(in.RecordName)

	values, err := u.resolveValues(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no record values resolved for %s", name)
	}

	rtype := in.RecordType
	if rtype == "" {
		rtype = DetectRecordType(values)
		logger.Info(ctx, "detected record type", "type", rtype)
		// Re-check now that the type is known.
		if rtype == model.RecordTypeTXT && in.Clear {
			return nil, fmt.Errorf("clearing conflicts requires record type A, AAAA, or CNAME, detected %s", rtype)
		}
	}
	if rtype == model.RecordTypeTXT {
		values = quoteTXTValues(values)
	}

	zone, err := u.resolveZone(ctx, in, name)
	if err != nil {
		return nil, err
	}

	// One record listing feeds both the TTL resolver and the conflict
	// clearer; skip it entirely when neither needs it.
	ttl := in.TTL
	var conflicts []*model.RecordSet
	if in.TTL <= 0 || in.Clear {
		records, truncated, err := u.Port.ListRecordSets(ctx, zone.ID)
		if err != nil {
			return nil, fmt.Errorf("list record sets of zone %s: %w", zone.ID, err)
		}
		if truncated {
			// Unlike zone discovery this degrades to a warning: a partial
			// clear beats aborting the whole update.
			logger.Warn(ctx, "record listing truncated, conflict clearing may be incomplete", "zone_id", zone.ID)
		}
		ttl = resolveTTL(records, name, rtype, in.TTL, in.DefaultTTL)
		if in.TTL <= 0 {
			logger.Info(ctx, "resolved TTL", "ttl", ttl)
		}
		if in.Clear {
			conflicts = conflictingRecords(records, name, rtype)
		}
	}

	record := model.RecordSet{Name: name, Type: rtype, TTL: ttl, Values: values}
	out := &UpdateOutput{Zone: zone, Record: record, Deleted: conflicts, DryRun: in.DryRun}

	if in.DryRun {
		for _, r := range conflicts {
			logger.Info(ctx, "would delete record", "name", r.Name, "type", r.Type)
		}
		logger.Info(ctx, "would upsert record", "name", name, "type", rtype, "ttl", ttl, "values", values)
		return out, nil
	}

	// Conflicting records go in their own batch: the control plane
	// rejects batches that delete and re-add at the same name in some
	// type combinations. Only submission is awaited, not propagation.
	if len(conflicts) > 0 {
		for _, r := range conflicts {
			logger.Info(ctx, "deleting conflicting record", "name", r.Name, "type", r.Type)
		}
		deletion, err := u.Port.SubmitChanges(ctx, zone.ID, deleteChanges(conflicts), "")
		if err != nil {
			return nil, fmt.Errorf("delete conflicting records: %w", err)
		}
		for _, r := range conflicts {
			u.journalChange(ctx, zone, model.ChangeActionDelete, *r, deletion, "")
		}
	}

	upsert := []model.Change{{Action: model.ChangeActionUpsert, RecordSet: record}}
	change, err := u.Port.SubmitChanges(ctx, zone.ID, upsert, in.Comment)
	if err != nil {
		return nil, fmt.Errorf("submit record change: %w", err)
	}
	out.Change = change
	logger.Info(ctx, "submitted record change", "change_id", change.ID, "status", change.Status)

	u.journalChange(ctx, zone, model.ChangeActionUpsert, record, change, in.Comment)

	if in.Wait && change.Status != model.ChangeStatusInsync {
		status, err := u.waitInsync(ctx, change.ID)
		if err != nil {
			return nil, err
		}
		out.Change = &model.ChangeInfo{ID: change.ID, Status: status}
		logger.Info(ctx, "record change propagated", "change_id", change.ID)
	}
	return out, nil
}

// waitInsync polls the change status at a fixed interval until the
// terminal INSYNC state. There is deliberately no timeout or retry cap;
// cancellation belongs to the invoking process.
func (u *UseCase) waitInsync(ctx context.Context, changeID string) (model.ChangeStatus, error) {
	logger := logging.FromContext(ctx)
	ticker := time.NewTicker(changePollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
		status, err := u.Port.ChangeStatus(ctx, changeID)
		if err != nil {
			return "", fmt.Errorf("poll change %s: %w", changeID, err)
		}
		logger.Debug(ctx, "change status", "change_id", changeID, "status", status)
		if status == model.ChangeStatusInsync {
			return status, nil
		}
	}
}

// journalChange appends one submitted record change to the local
// journal when one is configured. Journal failures must not fail the
// update.
func (u *UseCase) journalChange(ctx context.Context, zone *model.Zone, action model.ChangeAction, record model.RecordSet, change *model.ChangeInfo, comment string) {
	if u.Journal == nil {
		return
	}
	now := time.Now()
	entry := &model.JournalEntry{
		ID:         "chg-" + uuid.NewString(),
		ZoneID:     zone.ID,
		ZoneName:   zone.Name,
		Action:     action,
		RecordName: record.Name,
		RecordType: record.Type,
		TTL:        record.TTL,
		Values:     record.Values,
		ChangeID:   change.ID,
		Status:     change.Status,
		Comment:    comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.Journal.Create(ctx, entry); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to journal change", "error", err)
	}
}

// History lists journal entries, most recent first.
func (u *UseCase) History(ctx context.Context, in *HistoryInput) (*HistoryOutput, error) {
	if u.Journal == nil {
		return nil, model.ErrJournalDisabled
	}
	limit := 0
	if in != nil {
		limit = in.Limit
	}
	entries, err := u.Journal.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return &HistoryOutput{Entries: entries}, nil
}

// validateUpdateInput rejects mutually exclusive or missing inputs
// before any network call is made.
func validateUpdateInput(in *UpdateInput) error {
	if in == nil {
		return fmt.Errorf("input is nil")
	}
	if in.RecordName == "" {
		return fmt.Errorf("record name is required")
	}
	if in.ZoneID != "" && in.ZoneName != "" {
		return fmt.Errorf("zone id and zone name are mutually exclusive")
	}
	sources := 0
	if len(in.Values) > 0 {
		sources++
	}
	if in.ValueFrom != "" {
		sources++
	}
	if in.ValueFromURL != "" {
		sources++
	}
	if sources == 0 {
		return fmt.Errorf("a value must be supplied: explicit values, a value source, or a value URL")
	}
	if sources > 1 {
		return fmt.Errorf("explicit values, value source, and value URL are mutually exclusive")
	}
	if in.Clear && in.RecordType == model.RecordTypeTXT {
		return fmt.Errorf("clearing conflicts requires record type A, AAAA, or CNAME, got %s", in.RecordType)
	}
	return nil
}
