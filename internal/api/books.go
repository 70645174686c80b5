package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := c.Do(ctx, http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) CreateBook(ctx context.Context, req model.CreateBookRequest) error {
	return c.Do(ctx, http.MethodPost, "/api/books", req, nil)
}

func (c *Client) UpdateBookRating(ctx context.Context, bookID, rating int) error {
	path := fmt.Sprintf("/api/books/%d/rating", bookID)
	return c.Do(ctx, http.MethodPut, path, model.UpdateRatingRequest{Rating: rating}, nil)
}

func (c *Client) UpdateBookProgress(ctx context.Context, bookID, pageProgress int) error {
	path := fmt.Sprintf("/api/books/%d/progress", bookID)
	return c.Do(ctx, http.MethodPut, path, model.UpdateProgressRequest{PageProgress: pageProgress}, nil)
}

func (c *Client) DeleteBook(ctx context.Context, bookID int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), nil, nil)
}
