package api

import (
	"context"
	"net/http"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

// Recommendations submits the preference survey and returns the backend's
// picks along with the survey it evaluated.
func (c *Client) Recommendations(ctx context.Context, survey model.Survey) (*model.RecommendationsResponse, error) {
	resp := &model.RecommendationsResponse{}
	if err := c.Do(ctx, http.MethodPost, "/api/recommendations", survey, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
