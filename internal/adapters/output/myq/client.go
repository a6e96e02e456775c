package myq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every vendor round trip. A timeout is reported as a
// transport error.
const DefaultTimeout = 2250 * time.Millisecond

// StatusError is returned when the vendor answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("vendor API returned status %d", e.Status)
	}
	return fmt.Sprintf("vendor API returned status %d: %s", e.Status, e.Body)
}

// Client talks to the vendor device cloud. It holds no per-user state; the
// access token travels with every call.
type Client struct {
	url        string
	httpClient *http.Client
}

var _ ports.VendorPort = (*Client)(nil)

func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListDevices(ctx context.Context, accessToken string) (*model.VendorResult, error) {
	return c.do(ctx, http.MethodGet, c.url+"/devices", accessToken, nil)
}

func (c *Client) GetDoorState(ctx context.Context, accessToken, applianceID string) (*model.VendorResult, error) {
	q := url.Values{}
	q.Set("id", applianceID)
	return c.do(ctx, http.MethodGet, c.url+"/door/state?"+q.Encode(), accessToken, nil)
}

func (c *Client) SetState(ctx context.Context, accessToken string, resource ports.Resource, applianceID string, state int) (*model.VendorResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"id":    applianceID,
		"state": state,
	})
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%s/state", c.url, resource), accessToken, body)
}

// do issues one request and decodes the body. A JSON null body yields a nil
// result and a nil error.
func (c *Client) do(ctx context.Context, method, target, accessToken string, body []byte) (*model.VendorResult, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var result *model.VendorResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return result, nil
}
