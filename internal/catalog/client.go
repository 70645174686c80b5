// Package catalog adapts the Open Library API: free-text search, ISBN
// batch lookup and per-edition detail, normalized into one candidate
// shape that never leaks the external payloads past this boundary.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bookmarkd/bookmarkd/internal/log"
)

type Client struct {
	baseURL  string
	coverURL string
	http     *http.Client
	// The catalog is a shared third-party service, keep request bursts
	// polite.
	limiter *rate.Limiter
	limit   int
}

func NewClient(baseURL, coverURL string, searchLimit int) *Client {
	if searchLimit <= 0 {
		searchLimit = 50
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		coverURL: strings.TrimRight(coverURL, "/"),
		http:     &http.Client{},
		limiter:  rate.NewLimiter(rate.Limit(3), 3),
		limit:    searchLimit,
	}
}

// searchDoc is the search-endpoint payload shape.
type searchDoc struct {
	Key             string   `json:"key"`
	Title           string   `json:"title"`
	AuthorName      []string `json:"author_name"`
	CoverI          int      `json:"cover_i"`
	CoverEditionKey string   `json:"cover_edition_key"`
	EditionKey      []string `json:"edition_key"`
}

type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

// isbnEntry is the batch-lookup payload shape, structurally different
// from searchDoc.
type isbnEntry struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Cover struct {
		ID int `json:"id"`
	} `json:"cover"`
	CoverEditionKey string `json:"cover_edition_key"`
	Identifiers     struct {
		OpenLibrary []string `json:"openlibrary"`
	} `json:"identifiers"`
	NumberOfPages int `json:"number_of_pages"`
}

type editionDetail struct {
	NumberOfPages int `json:"number_of_pages"`
}

// Search queries by free text, up to the configured result limit.
// Returns nothing when both terms are blank.
func (c *Client) Search(ctx context.Context, title, author string) ([]Edition, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" && author == "" {
		return nil, nil
	}

	params := url.Values{}
	if title != "" {
		params.Set("title", title)
	}
	if author != "" {
		params.Set("author", author)
	}
	params.Set("limit", strconv.Itoa(c.limit))

	var resp searchResponse
	if err := c.get(ctx, "/search.json?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	editions := make([]Edition, 0, len(resp.Docs))
	for _, doc := range resp.Docs {
		editions = append(editions, Edition{
			Key:             doc.Key,
			Title:           doc.Title,
			Authors:         doc.AuthorName,
			CoverID:         doc.CoverI,
			CoverEditionKey: doc.CoverEditionKey,
			EditionKeys:     doc.EditionKey,
		})
	}
	return editions, nil
}

// LookupISBN resolves a single edition by ISBN. A missing catalog entry
// is a soft miss: nil edition, nil error.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*Edition, error) {
	isbn = strings.TrimSpace(isbn)
	if !ValidISBN(isbn) {
		return nil, errors.Errorf("invalid ISBN length: %q", isbn)
	}

	bibkey := "ISBN:" + isbn
	params := url.Values{}
	params.Set("bibkeys", bibkey)
	params.Set("format", "json")
	params.Set("jscmd", "data")

	entries := map[string]isbnEntry{}
	if err := c.get(ctx, "/api/books?"+params.Encode(), &entries); err != nil {
		return nil, err
	}

	entry, ok := entries[bibkey]
	if !ok {
		return nil, nil
	}

	// The two payload shapes diverge here: author objects instead of a
	// name list, cover object instead of cover_i, resolving key from the
	// identifier block when present.
	authors := make([]string, 0, len(entry.Authors))
	for _, a := range entry.Authors {
		if a.Name != "" {
			authors = append(authors, a.Name)
		}
	}

	coverID := entry.Cover.ID
	coverEditionKey := entry.CoverEditionKey

	key := entry.Key
	if len(entry.Identifiers.OpenLibrary) > 0 {
		key = entry.Identifiers.OpenLibrary[0]
	} else if coverEditionKey == "" && coverID != 0 {
		coverEditionKey = strconv.Itoa(coverID)
	}

	return &Edition{
		Key:             key,
		Title:           entry.Title,
		Authors:         authors,
		CoverID:         coverID,
		CoverEditionKey: coverEditionKey,
		Pages:           entry.NumberOfPages,
	}, nil
}

// EditionPages fetches the page count for a specific edition. Only
// edition-shaped keys have one, the caller gates on IsEditionKey.
func (c *Client) EditionPages(ctx context.Context, key string) (int, error) {
	var detail editionDetail
	if err := c.get(ctx, fmt.Sprintf("/books/%s.json", key), &detail); err != nil {
		return 0, err
	}
	return detail.NumberOfPages, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter interrupted")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build catalog request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "catalog request failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Warn("Catalog returned error status",
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
		)
		return errors.Errorf("catalog returned status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode catalog response")
	}
	return nil
}
