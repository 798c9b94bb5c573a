// Package client is a typed HTTP client for the spaces API. It mirrors
// the five resource operations plus the health check and propagates
// transport failures unchanged; there is no retry except the health
// check's single one-shot retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/renaldy/spaces-api/internal/api/handler"
	"github.com/renaldy/spaces-api/internal/domain"
)

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client calls the spaces API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateSpace creates a new space
func (c *Client) CreateSpace(ctx context.Context, input domain.SpaceCreate) (*domain.SpaceDTO, error) {
	var space domain.SpaceDTO
	if err := c.do(ctx, http.MethodPost, "/api/v1/spaces", input, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// GetSpace retrieves a space by ID
func (c *Client) GetSpace(ctx context.Context, id string) (*domain.SpaceDTO, error) {
	var space domain.SpaceDTO
	if err := c.do(ctx, http.MethodGet, "/api/v1/spaces/"+id, nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// ListSpaces retrieves all spaces, most recently created first
func (c *Client) ListSpaces(ctx context.Context) ([]domain.SpaceDTO, error) {
	var spaces []domain.SpaceDTO
	if err := c.do(ctx, http.MethodGet, "/api/v1/spaces", nil, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

// UpdateSpace applies a partial update to a space
func (c *Client) UpdateSpace(ctx context.Context, id string, input domain.SpaceUpdate) (*domain.SpaceDTO, error) {
	var space domain.SpaceDTO
	if err := c.do(ctx, http.MethodPatch, "/api/v1/spaces/"+id, input, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// DeleteSpace removes a space permanently
func (c *Client) DeleteSpace(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/spaces/"+id, nil, nil)
}

// Health checks service health, retrying once on failure
func (c *Client) Health(ctx context.Context) (*handler.HealthStatus, error) {
	var status handler.HealthStatus
	err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &status)
	if err == nil {
		return &status, nil
	}

	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}
