package picker

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/bookmarkd/bookmarkd/internal/api"
	"github.com/bookmarkd/bookmarkd/internal/catalog"
	"github.com/bookmarkd/bookmarkd/internal/log"
)

func init() {
	log.Logger = zap.NewNop()
}

type fakeCatalog struct {
	searchResults []catalog.Edition
	isbnResult    *catalog.Edition
	pagesByKey    map[string]int

	searchCalls int
	isbnCalls   int
	detailCalls int
	// onDetail runs inside EditionPages, before it returns. Used to
	// simulate state changing while a lookup is in flight.
	onDetail func()
}

func (f *fakeCatalog) Search(ctx context.Context, title, author string) ([]catalog.Edition, error) {
	f.searchCalls++
	return f.searchResults, nil
}

func (f *fakeCatalog) LookupISBN(ctx context.Context, isbn string) (*catalog.Edition, error) {
	f.isbnCalls++
	return f.isbnResult, nil
}

func (f *fakeCatalog) EditionPages(ctx context.Context, key string) (int, error) {
	f.detailCalls++
	if f.onDetail != nil {
		f.onDetail()
	}
	if pages, ok := f.pagesByKey[key]; ok {
		return pages, nil
	}
	return 0, fmt.Errorf("no edition %s", key)
}

func nEditions(n int) []catalog.Edition {
	editions := make([]catalog.Edition, n)
	for i := range editions {
		editions[i] = catalog.Edition{
			Key:   fmt.Sprintf("/works/OL%dW", i+1),
			Title: fmt.Sprintf("Book %d", i+1),
		}
	}
	return editions
}

func TestSearchModeDispatch(t *testing.T) {
	fake := &fakeCatalog{}
	p := New(fake, api.NotifierFunc(func(string) {}), 5)
	ctx := context.Background()

	// All inputs absent or invalid: no mode fires.
	if err := p.Search(ctx, "", "", ""); err != nil {
		t.Fatal(err)
	}
	if err := p.Search(ctx, "", "", "12345"); err != nil { // wrong ISBN length
		t.Fatal(err)
	}
	if fake.searchCalls != 0 || fake.isbnCalls != 0 {
		t.Fatalf("No lookup should fire, got search=%d isbn=%d", fake.searchCalls, fake.isbnCalls)
	}

	// A validly sized ISBN wins over free text.
	fake.isbnResult = &catalog.Edition{Key: "OL1M", Title: "X", Pages: 100}
	if err := p.Search(ctx, "also a title", "", "9780134190440"); err != nil {
		t.Fatal(err)
	}
	if fake.isbnCalls != 1 || fake.searchCalls != 0 {
		t.Fatalf("ISBN mode should fire alone, got search=%d isbn=%d", fake.searchCalls, fake.isbnCalls)
	}

	// Free text fires when the ISBN is absent.
	if err := p.Search(ctx, "title", "", ""); err != nil {
		t.Fatal(err)
	}
	if fake.searchCalls != 1 {
		t.Fatalf("Text mode should fire, got %d", fake.searchCalls)
	}
}

func TestISBNMissNotifiesSoftly(t *testing.T) {
	var notified []string
	fake := &fakeCatalog{}
	p := New(fake, api.NotifierFunc(func(m string) { notified = append(notified, m) }), 5)

	if err := p.Search(context.Background(), "", "", "9999999999999"); err != nil {
		t.Fatalf("Soft miss must not error: %v", err)
	}
	if len(p.Results()) != 0 {
		t.Fatalf("No candidates expected")
	}
	if len(notified) != 1 {
		t.Fatalf("Expected one notification, got %v", notified)
	}
}

func TestISBNPrefillSkipsDetailFetch(t *testing.T) {
	fake := &fakeCatalog{
		isbnResult: &catalog.Edition{Key: "OL25766837M", Title: "The Go Programming Language", Pages: 352},
	}
	p := New(fake, nil, 5)

	if err := p.Search(context.Background(), "", "", "9780134190440"); err != nil {
		t.Fatal(err)
	}
	if p.Pages() != 352 {
		t.Fatalf("Page count should be pre-filled, got %d", p.Pages())
	}
	if fake.detailCalls != 0 {
		t.Fatalf("Prefilled count must skip the detail fetch, got %d calls", fake.detailCalls)
	}
}

func TestPaginationBounds(t *testing.T) {
	fake := &fakeCatalog{searchResults: nEditions(12)}
	p := New(fake, nil, 5)
	if err := p.Search(context.Background(), "t", "", ""); err != nil {
		t.Fatal(err)
	}

	// 12 results: max page index is floor(12/5) = 2.
	if p.CanPrev() {
		t.Errorf("Previous must be disabled on page 0")
	}
	if !p.CanNext() {
		t.Errorf("Next should be enabled on page 0")
	}

	p.ChangePage(1)
	p.ChangePage(1)
	if p.PageIndex() != 2 {
		t.Fatalf("PageIndex = %d", p.PageIndex())
	}
	if p.CanNext() {
		t.Errorf("Next must be disabled at the last page")
	}

	p.ChangePage(1) // clamped
	if p.PageIndex() != 2 {
		t.Errorf("Page index should clamp at 2, got %d", p.PageIndex())
	}
	p.ChangePage(-5) // clamped
	if p.PageIndex() != 0 {
		t.Errorf("Page index should clamp at 0, got %d", p.PageIndex())
	}

	if got := len(p.CurrentPage()); got != 5 {
		t.Errorf("Page size = %d", got)
	}
	p.ChangePage(2)
	if got := len(p.CurrentPage()); got != 2 {
		t.Errorf("Last page should hold the remainder, got %d", got)
	}
}

func TestChangePageResetsSelection(t *testing.T) {
	fake := &fakeCatalog{
		searchResults: nEditions(12),
		pagesByKey:    map[string]int{},
	}
	p := New(fake, nil, 5)
	p.Search(context.Background(), "t", "", "")

	if err := p.Select(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if p.Selected() == nil {
		t.Fatalf("Expected a selection")
	}
	p.ChangePage(1)
	if p.Selected() != nil {
		t.Fatalf("Page change must reset the selection")
	}
}

func TestDetailFetchGatedOnEditionKey(t *testing.T) {
	fake := &fakeCatalog{
		searchResults: []catalog.Edition{
			{Key: "/works/OL1W", Title: "Work only"},
			{Key: "/works/OL2W", Title: "Has edition", CoverEditionKey: "OL12345M"},
			{Key: "not-a-catalog-key", Title: "Junk"},
		},
		pagesByKey: map[string]int{"OL12345M": 240},
	}
	p := New(fake, nil, 5)
	p.Search(context.Background(), "t", "", "")
	ctx := context.Background()

	// Work key: no page data exists, never fetch.
	if err := p.Select(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if fake.detailCalls != 0 {
		t.Fatalf("Work key must not trigger the detail fetch")
	}
	if p.Pages() != 0 {
		t.Fatalf("Pages should be unknown")
	}

	// Edition key: fetch fires and fills the count.
	if err := p.Select(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if fake.detailCalls != 1 {
		t.Fatalf("Edition key should trigger exactly one fetch, got %d", fake.detailCalls)
	}
	if p.Pages() != 240 {
		t.Fatalf("Pages = %d", p.Pages())
	}

	// Arbitrary keys don't match the edition pattern.
	if err := p.Select(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if fake.detailCalls != 1 {
		t.Fatalf("Non-catalog key must not trigger a fetch")
	}
}

func TestDetailFailureIsSwallowed(t *testing.T) {
	fake := &fakeCatalog{
		searchResults: []catalog.Edition{{Key: "x", CoverEditionKey: "OL500M", Title: "Flaky"}},
		pagesByKey:    map[string]int{}, // fetch will fail
	}
	p := New(fake, nil, 5)
	p.Search(context.Background(), "t", "", "")

	if err := p.Select(context.Background(), 0); err != nil {
		t.Fatalf("Detail failures are swallowed, got %v", err)
	}
	if p.Pages() != 0 {
		t.Fatalf("Pages should stay unknown")
	}
}

func TestStaleDetailCompletionDiscarded(t *testing.T) {
	fake := &fakeCatalog{
		searchResults: nEditions(12),
		pagesByKey:    map[string]int{"OL77M": 500},
	}
	fake.searchResults[0].CoverEditionKey = "OL77M"
	p := New(fake, nil, 5)
	p.Search(context.Background(), "t", "", "")

	// The user flips the page while the lookup is still in flight; its
	// result must not land on the new state.
	fake.onDetail = func() { p.ChangePage(1) }

	if err := p.Select(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if p.Pages() != 0 {
		t.Fatalf("Stale completion applied, Pages = %d", p.Pages())
	}
}

func TestManualPagesValidation(t *testing.T) {
	p := New(&fakeCatalog{}, nil, 5)
	for _, n := range []int{0, -1, -352} {
		if err := p.SetManualPages(n); err == nil {
			t.Errorf("Expected %d to be rejected", n)
		}
	}
	if err := p.SetManualPages(352); err != nil {
		t.Errorf("Positive count rejected: %v", err)
	}
}

func TestCommitRequiresPageCount(t *testing.T) {
	fake := &fakeCatalog{
		searchResults: []catalog.Edition{{
			Key:     "/works/OL1W",
			Title:   "The Dispossessed",
			Authors: []string{"Ursula K. Le Guin"},
		}},
	}
	p := New(fake, nil, 5)
	p.Search(context.Background(), "t", "", "")

	if _, err := p.Commit(); err == nil {
		t.Fatalf("Commit without selection must fail")
	}

	if err := p.Select(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Commit(); err == nil {
		t.Fatalf("Commit without page count must fail")
	}

	if err := p.SetManualPages(387); err != nil {
		t.Fatal(err)
	}
	req, err := p.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if req.TotalPages != 387 || req.PageProgress != 0 {
		t.Errorf("Request pages = %d/%d", req.PageProgress, req.TotalPages)
	}
	if req.Title != "The Dispossessed" || req.Author != "Ursula K. Le Guin" {
		t.Errorf("Request identity = %q by %q", req.Title, req.Author)
	}
	if req.OpenLibraryID != "/works/OL1W" {
		t.Errorf("OpenLibraryID = %q", req.OpenLibraryID)
	}

	// The manual count is for the submission only, never written back.
	if p.Selected().Pages != 0 {
		t.Errorf("Manual count must not be written to the candidate")
	}
}
