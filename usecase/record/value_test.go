package record

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zoneup/zoneup/domain/model"
)

func TestResolveValuesExplicit(t *testing.T) {
	u := &UseCase{Source: &fakeSource{}}
	values, err := u.resolveValues(context.Background(), &UpdateInput{Values: []string{"b", "a"}})
	if err != nil {
		t.Fatalf("resolveValues() error = %v", err)
	}
	// Caller-given order is preserved verbatim.
	if len(values) != 2 || values[0] != "b" || values[1] != "a" {
		t.Errorf("resolveValues() = %v, want [b a]", values)
	}
}

func TestResolveValuesFromURL(t *testing.T) {
	src := &fakeSource{text: " 203.0.113.5\n"}
	u := &UseCase{Source: src}
	values, err := u.resolveValues(context.Background(), &UpdateInput{ValueFromURL: "https://checkip.amazonaws.com/"})
	if err != nil {
		t.Fatalf("resolveValues() error = %v", err)
	}
	if len(values) != 1 || values[0] != "203.0.113.5" {
		t.Errorf("resolveValues() = %v, want trimmed single value", values)
	}
	if len(src.fetchedURLs) != 1 {
		t.Errorf("FetchText called %d times, want 1", len(src.fetchedURLs))
	}

	u = &UseCase{Source: &fakeSource{textErr: errors.New("returned non-200 status 503")}}
	if _, err := u.resolveValues(context.Background(), &UpdateInput{ValueFromURL: "https://example.com/ip"}); err == nil {
		t.Error("resolveValues() should fail on fetch error")
	}
}

func TestResolveValuesFromTaskMetadata(t *testing.T) {
	task := &model.TaskMetadata{Containers: []model.TaskContainer{{
		Networks: []model.TaskNetwork{{
			IPv4Addresses: []string{"", "10.0.1.5"}, // blank entry must be dropped
			IPv6Addresses: []string{"2001:db8::5"},
		}},
	}}}

	u := &UseCase{Source: &fakeSource{task: task}}
	values, err := u.resolveValues(context.Background(), &UpdateInput{
		ValueFrom:  model.ValueSourceECSMetadata,
		RecordType: model.RecordTypeA,
	})
	if err != nil {
		t.Fatalf("resolveValues() error = %v", err)
	}
	if len(values) != 1 || values[0] != "10.0.1.5" {
		t.Errorf("resolveValues() = %v, want [10.0.1.5]", values)
	}

	values, err = u.resolveValues(context.Background(), &UpdateInput{
		ValueFrom:  model.ValueSourceECSMetadata,
		RecordType: model.RecordTypeAAAA,
	})
	if err != nil {
		t.Fatalf("resolveValues() error = %v", err)
	}
	if len(values) != 1 || values[0] != "2001:db8::5" {
		t.Errorf("resolveValues() = %v, want [2001:db8::5]", values)
	}
}

func TestResolveValuesAutoFallsBackToInstanceMetadata(t *testing.T) {
	tests := []struct {
		name      string
		in        *UpdateInput
		instance  map[string]string
		wantField string
		wantValue string
	}{
		{
			name:      "untyped public lookup",
			in:        &UpdateInput{ValueFrom: model.ValueSourceAuto, AddressKind: model.AddressKindPublic},
			instance:  map[string]string{"public-ipv4": "203.0.113.5"},
			wantField: "public-ipv4",
			wantValue: "203.0.113.5",
		},
		{
			name:      "private address kind",
			in:        &UpdateInput{ValueFrom: model.ValueSourceAuto, RecordType: model.RecordTypeA, AddressKind: model.AddressKindPrivate},
			instance:  map[string]string{"local-ipv4": "10.0.1.5"},
			wantField: "local-ipv4",
			wantValue: "10.0.1.5",
		},
		{
			name:      "AAAA ignores address kind",
			in:        &UpdateInput{ValueFrom: model.ValueSourceAuto, RecordType: model.RecordTypeAAAA, AddressKind: model.AddressKindPublic},
			instance:  map[string]string{"ipv6": "2001:db8::5"},
			wantField: "ipv6",
			wantValue: "2001:db8::5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// task is nil: no container metadata endpoint configured.
			src := &fakeSource{instance: tt.instance}
			u := &UseCase{Source: src}
			values, err := u.resolveValues(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("resolveValues() error = %v", err)
			}
			if len(values) != 1 || values[0] != tt.wantValue {
				t.Errorf("resolveValues() = %v, want [%s]", values, tt.wantValue)
			}
			if len(src.instanceCalls) != 1 || src.instanceCalls[0] != tt.wantField {
				t.Errorf("InstanceMetadata fields = %v, want [%s]", src.instanceCalls, tt.wantField)
			}
		})
	}
}

func TestResolveValuesMetadataErrors(t *testing.T) {
	t.Run("auto with no probes yielding a value", func(t *testing.T) {
		u := &UseCase{Source: &fakeSource{instanceErr: errors.New("connect timeout")}}
		_, err := u.resolveValues(context.Background(), &UpdateInput{ValueFrom: model.ValueSourceAuto, AddressKind: model.AddressKindPublic})
		if err == nil || !strings.Contains(err.Error(), "auto-detect") {
			t.Errorf("resolveValues() error = %v, want auto-detect failure", err)
		}
	})

	t.Run("explicit instance probe surfaces transport error", func(t *testing.T) {
		u := &UseCase{Source: &fakeSource{instanceErr: errors.New("connect timeout")}}
		_, err := u.resolveValues(context.Background(), &UpdateInput{ValueFrom: model.ValueSourceEC2Metadata, AddressKind: model.AddressKindPublic})
		if err == nil || !strings.Contains(err.Error(), "connect timeout") {
			t.Errorf("resolveValues() error = %v, want wrapped transport error", err)
		}
	})

	t.Run("probe with non-address record type", func(t *testing.T) {
		u := &UseCase{Source: &fakeSource{}}
		_, err := u.resolveValues(context.Background(), &UpdateInput{ValueFrom: model.ValueSourceEC2Metadata, RecordType: model.RecordTypeTXT})
		if err == nil || !strings.Contains(err.Error(), "record type A or AAAA") {
			t.Errorf("resolveValues() error = %v, want record type restriction", err)
		}
	})

	t.Run("task metadata fetch failure is fatal even in auto mode", func(t *testing.T) {
		u := &UseCase{Source: &fakeSource{taskErr: errors.New("returned non-200 status 500")}}
		_, err := u.resolveValues(context.Background(), &UpdateInput{ValueFrom: model.ValueSourceAuto, RecordType: model.RecordTypeA})
		if err == nil || !strings.Contains(err.Error(), "task metadata") {
			t.Errorf("resolveValues() error = %v, want task metadata failure", err)
		}
	})
}
