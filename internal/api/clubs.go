package api

import (
	"context"
	"net/http"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

// ListClubs returns the clubs the current user can still join.
func (c *Client) ListClubs(ctx context.Context) ([]model.Club, error) {
	var clubs []model.Club
	if err := c.Do(ctx, http.MethodGet, "/api/clubs", nil, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// CreateClub creates a club, the creating user becomes a member.
func (c *Client) CreateClub(ctx context.Context, req model.CreateClubRequest) (*model.Club, error) {
	club := &model.Club{}
	if err := c.Do(ctx, http.MethodPost, "/api/clubs", req, club); err != nil {
		return nil, err
	}
	return club, nil
}
