package api

import (
	"context"
	"net/http"
)

// Health checks that the backend is reachable. No credential is needed.
func (c *Client) Health(ctx context.Context) error {
	return c.Do(ctx, http.MethodGet, "/api/health", nil, nil, WithoutAuth())
}
