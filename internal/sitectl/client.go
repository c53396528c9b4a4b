// Package sitectl holds the operator commands of the sitectl binary.
package sitectl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultHost = "localhost:8080"

// Client talks to a running site over plain HTTP.
type Client struct {
	Host string
	HTTP *http.Client
}

func NewClient(host string) *Client {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	return &Client{
		Host: strings.TrimRight(host, "/"),
		HTTP: &http.Client{Timeout: 5 * time.Second},
	}
}

// Ping checks /ping once, without retries.
func (c *Client) Ping(ctx context.Context) error {
	body, err := c.get(ctx, "/ping")
	if err != nil {
		return err
	}
	if body != "PONG" {
		return fmt.Errorf("unexpected ping response %q", body)
	}
	return nil
}

// Version returns the version string the running server reports.
func (c *Client) Version(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/version")
	if err != nil {
		return "", err
	}
	if body == "" {
		return "", fmt.Errorf("no version detected")
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Host+path, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s failed with status: %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
