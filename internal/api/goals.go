package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	resp := &model.GoalsResponse{}
	if err := c.Do(ctx, http.MethodGet, "/api/goals", nil, resp); err != nil {
		return nil, err
	}
	return resp.Goals, nil
}

func (c *Client) CreateGoal(ctx context.Context, req model.CreateGoalRequest) error {
	return c.Do(ctx, http.MethodPost, "/api/goals", req, nil)
}

func (c *Client) UpdateGoalProgress(ctx context.Context, goalID, progress int) error {
	path := fmt.Sprintf("/api/goals/%d", goalID)
	return c.Do(ctx, http.MethodPut, path, model.UpdateGoalRequest{Progress: progress}, nil)
}

func (c *Client) DeleteGoal(ctx context.Context, goalID int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/goals/%d", goalID), nil, nil)
}
