// Package device holds the thin boundary client for a live BrewOS machine.
// When demo mode is inactive the telemetry handlers fetch real data through
// it; the machine protocol itself lives on the device side.
package device

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/brewos-io/app/internal/models"
)

// Client 真机 API 客户端
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client, logger: logger}
}

// FetchDataset pulls the full telemetry bundle from the machine.
func (c *Client) FetchDataset(ctx context.Context) (*models.DemoDataset, error) {
	var ds models.DemoDataset
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&ds).
		Get("/telemetry/dataset")
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch dataset: machine returned %s", resp.Status())
	}
	c.logger.Debug("fetched live dataset",
		zap.Int("brews", len(ds.BrewHistory)),
		zap.Int("power_samples", len(ds.PowerHistory)))
	return &ds, nil
}
