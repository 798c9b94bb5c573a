package client

import (
	"context"
	"sync"

	"github.com/renaldy/spaces-api/internal/api/handler"
	"github.com/renaldy/spaces-api/internal/domain"
)

// CachedClient layers a query cache over the client. Reads answer from
// the cache when the key is fresh; every successful mutation invalidates
// the list key so the next list refetches, and keeps the per-id key in
// step with the server's answer.
type CachedClient struct {
	api *Client

	mu     sync.Mutex
	list   []domain.SpaceDTO
	listOK bool
	byID   map[string]domain.SpaceDTO
}

// NewCached wraps a client with the query cache
func NewCached(api *Client) *CachedClient {
	return &CachedClient{
		api:  api,
		byID: make(map[string]domain.SpaceDTO),
	}
}

// ListSpaces returns the cached list, fetching on a miss
func (c *CachedClient) ListSpaces(ctx context.Context) ([]domain.SpaceDTO, error) {
	c.mu.Lock()
	if c.listOK {
		cached := make([]domain.SpaceDTO, len(c.list))
		copy(cached, c.list)
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	spaces, err := c.api.ListSpaces(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.list = spaces
	c.listOK = true
	for _, s := range spaces {
		c.byID[s.ID] = s
	}
	c.mu.Unlock()

	result := make([]domain.SpaceDTO, len(spaces))
	copy(result, spaces)
	return result, nil
}

// GetSpace returns the cached space, fetching on a miss
func (c *CachedClient) GetSpace(ctx context.Context, id string) (*domain.SpaceDTO, error) {
	c.mu.Lock()
	if cached, ok := c.byID[id]; ok {
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	space, err := c.api.GetSpace(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[space.ID] = *space
	c.mu.Unlock()

	return space, nil
}

// CreateSpace creates a space and invalidates the list
func (c *CachedClient) CreateSpace(ctx context.Context, input domain.SpaceCreate) (*domain.SpaceDTO, error) {
	space, err := c.api.CreateSpace(ctx, input)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.listOK = false
	c.byID[space.ID] = *space
	c.mu.Unlock()

	return space, nil
}

// UpdateSpace updates a space and invalidates the list
func (c *CachedClient) UpdateSpace(ctx context.Context, id string, input domain.SpaceUpdate) (*domain.SpaceDTO, error) {
	space, err := c.api.UpdateSpace(ctx, id, input)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.listOK = false
	c.byID[space.ID] = *space
	c.mu.Unlock()

	return space, nil
}

// DeleteSpace deletes a space and invalidates the list
func (c *CachedClient) DeleteSpace(ctx context.Context, id string) error {
	if err := c.api.DeleteSpace(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	c.listOK = false
	delete(c.byID, id)
	c.mu.Unlock()

	return nil
}

// Health is a pass-through; health is never cached
func (c *CachedClient) Health(ctx context.Context) (*handler.HealthStatus, error) {
	return c.api.Health(ctx)
}

// Invalidate drops every cached key
func (c *CachedClient) Invalidate() {
	c.mu.Lock()
	c.listOK = false
	c.list = nil
	c.byID = make(map[string]domain.SpaceDTO)
	c.mu.Unlock()
}
