// Package picker drives the add-book flow: search the catalog, page
// through candidates, settle a page count, build the creation request.
// It runs on one logical thread, completions are ordered with a
// generation counter instead of locks.
package picker

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmarkd/bookmarkd/internal/api"
	"github.com/bookmarkd/bookmarkd/internal/catalog"
	"github.com/bookmarkd/bookmarkd/internal/log"
	"github.com/bookmarkd/bookmarkd/internal/model"
)

// Catalog is the slice of the catalog client the picker needs.
type Catalog interface {
	Search(ctx context.Context, title, author string) ([]catalog.Edition, error)
	LookupISBN(ctx context.Context, isbn string) (*catalog.Edition, error)
	EditionPages(ctx context.Context, key string) (int, error)
}

type Picker struct {
	catalog  Catalog
	notifier api.Notifier
	pageSize int

	editions  []catalog.Edition
	pageIndex int
	selected  int // index into editions, -1 when nothing selected
	pages     int // known page count for the selection, 0 unknown
	manual    int // manual page count, used for the submission only
	// gen orders page-count lookups: a completion only applies when no
	// newer selection happened while it was in flight.
	gen uint64
}

func New(c Catalog, notifier api.Notifier, pageSize int) *Picker {
	if pageSize <= 0 {
		pageSize = 5
	}
	if notifier == nil {
		notifier = api.StderrNotifier{}
	}
	return &Picker{catalog: c, notifier: notifier, pageSize: pageSize, selected: -1}
}

// Search dispatches one of the two mutually exclusive modes. A validly
// sized ISBN wins; otherwise free text fires when either term is set;
// otherwise the call is a no-op.
func (p *Picker) Search(ctx context.Context, title, author, isbn string) error {
	switch {
	case catalog.ValidISBN(isbn):
		return p.searchISBN(ctx, isbn)
	case title != "" || author != "":
		return p.searchText(ctx, title, author)
	default:
		return nil
	}
}

func (p *Picker) searchText(ctx context.Context, title, author string) error {
	editions, err := p.catalog.Search(ctx, title, author)
	if err != nil {
		return errors.Wrap(err, "catalog search failed")
	}
	p.setResults(editions)
	return nil
}

func (p *Picker) searchISBN(ctx context.Context, isbn string) error {
	edition, err := p.catalog.LookupISBN(ctx, isbn)
	if err != nil {
		return errors.Wrap(err, "ISBN lookup failed")
	}
	if edition == nil {
		// Soft miss, not an error.
		p.notifier.Notify("No book found for ISBN " + isbn)
		p.setResults(nil)
		return nil
	}
	p.setResults([]catalog.Edition{*edition})
	return p.Select(ctx, 0)
}

func (p *Picker) setResults(editions []catalog.Edition) {
	p.editions = editions
	p.pageIndex = 0
	p.clearSelection()
}

func (p *Picker) clearSelection() {
	p.selected = -1
	p.pages = 0
	p.manual = 0
	p.gen++
}

func (p *Picker) Results() []catalog.Edition { return p.editions }

// maxPageIndex is floor(N/pageSize), matching the original navigation
// bound even when the last page comes up empty.
func (p *Picker) maxPageIndex() int {
	return len(p.editions) / p.pageSize
}

func (p *Picker) PageIndex() int { return p.pageIndex }

func (p *Picker) CanPrev() bool { return p.pageIndex > 0 }

func (p *Picker) CanNext() bool { return p.pageIndex < p.maxPageIndex() }

// ChangePage moves by delta pages, clamped into range. Any in-progress
// selection is reset.
func (p *Picker) ChangePage(delta int) {
	p.clearSelection()
	next := p.pageIndex + delta
	if next < 0 {
		next = 0
	}
	if max := p.maxPageIndex(); next > max {
		next = max
	}
	p.pageIndex = next
}

// CurrentPage returns the candidates on the current page, keys resolved.
func (p *Picker) CurrentPage() []catalog.Edition {
	start := p.pageIndex * p.pageSize
	if start >= len(p.editions) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.editions) {
		end = len(p.editions)
	}
	page := p.editions[start:end]
	for i := range page {
		page[i].Key = page[i].Resolve()
	}
	return page
}

// Select marks the candidate at index (into Results) as chosen and kicks
// off the page-count follow-up when the count is not already known and
// the key is edition-shaped. Work keys never trigger the fetch, the
// catalog has no page data for them. Lookup failures are logged and
// swallowed, the count just stays unknown.
func (p *Picker) Select(ctx context.Context, index int) error {
	if index < 0 || index >= len(p.editions) {
		return errors.Errorf("selection index %d out of range", index)
	}

	p.clearSelection()
	p.selected = index

	edition := &p.editions[index]
	edition.Key = edition.Resolve()

	if edition.Pages > 0 {
		// ISBN shortcut: the lookup payload already had the count.
		p.pages = edition.Pages
		return nil
	}
	if !catalog.IsEditionKey(edition.Key) {
		return nil
	}

	gen := p.gen
	pages, err := p.catalog.EditionPages(ctx, edition.Key)
	if err != nil {
		log.Warn("Failed to fetch edition details",
			zap.String("key", edition.Key),
			zap.Error(err),
		)
		return nil
	}
	if gen != p.gen {
		// A newer selection happened while the lookup was in flight.
		return nil
	}
	p.pages = pages
	return nil
}

func (p *Picker) Selected() *catalog.Edition {
	if p.selected < 0 || p.selected >= len(p.editions) {
		return nil
	}
	return &p.editions[p.selected]
}

// Pages returns the known page count for the selection, 0 when unknown.
func (p *Picker) Pages() int { return p.pages }

// NeedsManualPages reports whether a commit requires the user to supply a
// page count first.
func (p *Picker) NeedsManualPages() bool {
	return p.selected >= 0 && p.pages == 0 && p.manual == 0
}

// SetManualPages records a user-entered page count for the submission.
// It is never written back to the candidate.
func (p *Picker) SetManualPages(n int) error {
	if n <= 0 {
		return errors.Errorf("page count must be a positive integer, got %d", n)
	}
	p.manual = n
	return nil
}

// Commit builds the creation request for the selected candidate. A
// candidate cannot be submitted without a page count.
func (p *Picker) Commit() (model.CreateBookRequest, error) {
	selected := p.Selected()
	if selected == nil {
		return model.CreateBookRequest{}, errors.New("no edition selected")
	}

	pages := p.pages
	if pages == 0 {
		pages = p.manual
	}
	if pages == 0 {
		return model.CreateBookRequest{}, errors.New("page count unknown, enter it manually")
	}

	return model.CreateBookRequest{
		Title:         selected.Title,
		Author:        selected.AuthorLine(),
		PageProgress:  0,
		TotalPages:    pages,
		OpenLibraryID: selected.Key,
	}, nil
}
