// Package metadata implements model.ValueSourcePort: the container
// task metadata probe, the EC2 instance metadata probe, and plain-text
// URL fetches.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/zoneup/zoneup/domain/model"
)

// Env vars designating the container task metadata endpoint. The task
// document layout is identical between the V4 and legacy endpoints for
// the fields we read.
const (
	ecsMetadataEnvV4 = "ECS_CONTAINER_METADATA_URI_V4"
	ecsMetadataEnv   = "ECS_CONTAINER_METADATA_URI"
)

// Client implements model.ValueSourcePort.
type Client struct {
	http *http.Client
	imds *imds.Client
}

// New returns a Client using the default HTTP client and an IMDS client
// with default options.
func New() *Client {
	return &Client{
		http: http.DefaultClient,
		imds: imds.New(imds.Options{}),
	}
}

// TaskMetadata fetches the container task metadata document from the
// endpoint designated by the environment. Returns (nil, nil) when no
// endpoint is configured, so callers can fall back to other probes.
func (c *Client) TaskMetadata(ctx context.Context) (*model.TaskMetadata, error) {
	base := os.Getenv(ecsMetadataEnvV4)
	if base == "" {
		base = os.Getenv(ecsMetadataEnv)
	}
	if base == "" {
		return nil, nil
	}

	url := base + "/task"
	body, err := c.getText(ctx, url)
	if err != nil {
		return nil, err
	}
	var task model.TaskMetadata
	if err := json.Unmarshal([]byte(body), &task); err != nil {
		return nil, fmt.Errorf("decode task metadata from %s: %w", url, err)
	}
	return &task, nil
}

// InstanceMetadata fetches a single field such as "public-ipv4" from
// the EC2 instance metadata service.
func (c *Client) InstanceMetadata(ctx context.Context, field string) (string, error) {
	out, err := c.imds.GetMetadata(ctx, &imds.GetMetadataInput{Path: field})
	if err != nil {
		return "", err
	}
	defer out.Content.Close()
	data, err := io.ReadAll(out.Content)
	if err != nil {
		return "", fmt.Errorf("read instance metadata %s: %w", field, err)
	}
	return string(data), nil
}

// FetchText retrieves a plain-text value from an arbitrary URL.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	return c.getText(ctx, url)
}

func (c *Client) getText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("response from %s returned non-200 status code: %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", url, err)
	}
	return string(body), nil
}

var _ model.ValueSourcePort = (*Client)(nil)
