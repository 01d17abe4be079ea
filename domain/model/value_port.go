package model

import "context"

// TaskMetadata is the container-task metadata document served by the
// container orchestrator's metadata endpoint. Only the fields the value
// resolver consumes are modeled.
type TaskMetadata struct {
	Containers []TaskContainer `json:"Containers"`
}

// TaskContainer is a single container entry of a TaskMetadata document.
type TaskContainer struct {
	Networks []TaskNetwork `json:"Networks"`
}

// TaskNetwork is a network interface attached to a task container.
type TaskNetwork struct {
	IPv4Addresses []string `json:"IPv4Addresses"`
	IPv6Addresses []string `json:"IPv6Addresses"`
}

// ValueSourcePort is an interface (domain port) for discovering record
// values from the environment. Implementations live under adapters/metadata.
type ValueSourcePort interface {
	// TaskMetadata fetches the container task metadata document.
	// Returns (nil, nil) when no metadata endpoint is configured.
	TaskMetadata(ctx context.Context) (*TaskMetadata, error)

	// InstanceMetadata fetches a single instance metadata field such as
	// "public-ipv4". Returns an error when the service is unreachable.
	InstanceMetadata(ctx context.Context, field string) (string, error)

	// FetchText retrieves a plain-text value from an arbitrary URL.
	// Non-2xx responses are errors; the body is returned untrimmed.
	FetchText(ctx context.Context, url string) (string, error)
}
