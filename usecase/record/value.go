package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/zoneup/zoneup/domain/model"
	"github.com/zoneup/zoneup/internal/logging"
)

// resolveValues produces the record values from exactly one of the
// three mutually exclusive sources. Mutual exclusion has already been
// checked by validateUpdateInput; the result is non-empty on success.
func (u *UseCase) resolveValues(ctx context.Context, in *UpdateInput) ([]string, error) {
	switch {
	case len(in.Values) > 0:
		return in.Values, nil
	case in.ValueFromURL != "":
		return u.valuesFromURL(ctx, in.ValueFromURL)
	default:
		return u.valuesFromMetadata(ctx, in)
	}
}

// valuesFromURL fetches a plain-text value and trims surrounding
// whitespace. Most "what is my IP" endpoints terminate with a newline.
func (u *UseCase) valuesFromURL(ctx context.Context, url string) ([]string, error) {
	body, err := u.Source.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	value := strings.TrimSpace(body)
	logging.FromContext(ctx).Debug(ctx, "resolved value from URL", "url", url, "value", value)
	return []string{value}, nil
}

// valuesFromMetadata probes the container task metadata document and,
// depending on the source mode, the instance metadata service.
func (u *UseCase) valuesFromMetadata(ctx context.Context, in *UpdateInput) ([]string, error) {
	logger := logging.FromContext(ctx)
	var values []string

	src := in.ValueFrom
	if src == model.ValueSourceECSMetadata || src == model.ValueSourceAuto {
		task, err := u.Source.TaskMetadata(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch container task metadata: %w", err)
		}
		if task != nil {
			values = addressesFromTask(task, in.RecordType)
			logger.Debug(ctx, "container task metadata probe", "addresses", values)
		}
	}

	if src == model.ValueSourceEC2Metadata || (src == model.ValueSourceAuto && len(values) == 0) {
		field, err := instanceMetadataField(in.RecordType, in.AddressKind)
		if err != nil {
			return nil, err
		}
		v, err := u.Source.InstanceMetadata(ctx, field)
		switch {
		case err != nil && src == model.ValueSourceEC2Metadata:
			return nil, fmt.Errorf("fetch instance metadata %s: %w", field, err)
		case err != nil:
			// Auto mode tolerates an unreachable instance metadata service.
			logger.Debug(ctx, "instance metadata probe failed", "field", field, "error", err)
		case v != "":
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		if src == model.ValueSourceAuto {
			return nil, fmt.Errorf("unable to auto-detect a value: no container metadata endpoint and no usable instance metadata")
		}
		return nil, fmt.Errorf("no value available from %s", src)
	}
	return values, nil
}

// addressesFromTask picks addresses from the first network interface of
// the first task container. With awsvpc networking every container in
// the task shares the same addresses anyway.
func addressesFromTask(task *model.TaskMetadata, rtype model.RecordType) []string {
	if len(task.Containers) == 0 || len(task.Containers[0].Networks) == 0 {
		return nil
	}
	network := task.Containers[0].Networks[0]
	switch rtype {
	case model.RecordTypeA:
		var out []string
		for _, a := range network.IPv4Addresses {
			// The metadata service can return spurious blank entries.
			if a != "" {
				out = append(out, a)
			}
		}
		return out
	case model.RecordTypeAAAA:
		return network.IPv6Addresses
	}
	return nil
}

// instanceMetadataField maps the desired record type and address kind
// to an instance metadata field. An unset record type behaves as A.
func instanceMetadataField(rtype model.RecordType, kind model.AddressKind) (string, error) {
	switch {
	case (rtype == "" || rtype == model.RecordTypeA) && kind == model.AddressKindPrivate:
		return "local-ipv4", nil
	case rtype == "" || rtype == model.RecordTypeA:
		return "public-ipv4", nil
	case rtype == model.RecordTypeAAAA:
		return "ipv6", nil
	}
	return "", fmt.Errorf("value source probes require record type A or AAAA, got %s", rtype)
}
