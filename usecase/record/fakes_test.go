package record

import (
	"context"
	"fmt"

	"github.com/zoneup/zoneup/domain/model"
)

// fakePort is an in-memory model.DNSPort recording every call.
type fakePort struct {
	zones            []*model.Zone
	zonesTruncated   bool
	records          []*model.RecordSet
	recordsTruncated bool

	submitErr   error
	pollStates  []model.ChangeStatus // consumed one per ChangeStatus call
	listCalls   int
	recordCalls int
	pollCalls   int
	submissions []fakeSubmission
}

type fakeSubmission struct {
	zoneID  string
	changes []model.Change
	comment string
}

func (f *fakePort) ListZones(ctx context.Context) ([]*model.Zone, bool, error) {
	f.listCalls++
	return f.zones, f.zonesTruncated, nil
}

func (f *fakePort) ListRecordSets(ctx context.Context, zoneID string) ([]*model.RecordSet, bool, error) {
	f.recordCalls++
	return f.records, f.recordsTruncated, nil
}

func (f *fakePort) SubmitChanges(ctx context.Context, zoneID string, changes []model.Change, comment string) (*model.ChangeInfo, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submissions = append(f.submissions, fakeSubmission{zoneID: zoneID, changes: changes, comment: comment})
	return &model.ChangeInfo{ID: fmt.Sprintf("/change/C%d", len(f.submissions)), Status: model.ChangeStatusPending}, nil
}

func (f *fakePort) ChangeStatus(ctx context.Context, changeID string) (model.ChangeStatus, error) {
	f.pollCalls++
	if len(f.pollStates) == 0 {
		return model.ChangeStatusInsync, nil
	}
	status := f.pollStates[0]
	f.pollStates = f.pollStates[1:]
	return status, nil
}

// networkCalls is the total number of control-plane calls made.
func (f *fakePort) networkCalls() int {
	return f.listCalls + f.recordCalls + f.pollCalls + len(f.submissions)
}

var _ model.DNSPort = (*fakePort)(nil)

// fakeSource is an in-memory model.ValueSourcePort.
type fakeSource struct {
	task        *model.TaskMetadata
	taskErr     error
	instance    map[string]string // field -> value
	instanceErr error
	text        string
	textErr     error

	instanceCalls []string
	fetchedURLs   []string
}

func (f *fakeSource) TaskMetadata(ctx context.Context) (*model.TaskMetadata, error) {
	return f.task, f.taskErr
}

func (f *fakeSource) InstanceMetadata(ctx context.Context, field string) (string, error) {
	f.instanceCalls = append(f.instanceCalls, field)
	if f.instanceErr != nil {
		return "", f.instanceErr
	}
	return f.instance[field], nil
}

func (f *fakeSource) FetchText(ctx context.Context, url string) (string, error) {
	f.fetchedURLs = append(f.fetchedURLs, url)
	return f.text, f.textErr
}

var _ model.ValueSourcePort = (*fakeSource)(nil)

// fakeJournal records created entries.
type fakeJournal struct {
	entries []*model.JournalEntry
}

func (f *fakeJournal) Create(ctx context.Context, e *model.JournalEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeJournal) List(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	if limit > 0 && limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}
