package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/config"
	"github.com/bookmarkd/bookmarkd/internal/picker"
	"github.com/bookmarkd/bookmarkd/internal/util"
)

func newAddCmd() *cobra.Command {
	var title, author, isbn string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Search the catalog and add a book to your list",
		Long: `Search Open Library by title/author, or directly by ISBN when
--isbn has 10 or 13 characters, then pick an edition to add.`,
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			if title == "" && author == "" && isbn == "" {
				return errors.New("give at least --title, --author or --isbn")
			}

			p := picker.New(a.Catalog, nil, config.Opts.PageSize)
			if err := p.Search(ctx, title, author, isbn); err != nil {
				return err
			}
			if len(p.Results()) == 0 {
				fmt.Println("No results")
				return nil
			}

			if p.Selected() == nil {
				if err := a.pickEdition(ctx, p); err != nil {
					return err
				}
				if p.Selected() == nil {
					fmt.Println("Cancelled")
					return nil
				}
			}

			if p.NeedsManualPages() {
				answer, err := a.prompt("Page count unknown, enter it: ")
				if err != nil {
					return err
				}
				pages, err := util.ParsePositiveInt(answer)
				if err != nil {
					return errors.Errorf("page count must be a positive integer, got %q", answer)
				}
				if err := p.SetManualPages(pages); err != nil {
					return err
				}
			}

			req, err := p.Commit()
			if err != nil {
				return err
			}
			if err := a.Client.CreateBook(ctx, req); err != nil {
				return errors.New("could not add book")
			}
			fmt.Printf("Added %q by %s (%d pages)\n", req.Title, req.Author, req.TotalPages)
			return nil
		}),
	}
	cmd.Flags().StringVar(&title, "title", "", "book title to search for")
	cmd.Flags().StringVar(&author, "author", "", "author to search for")
	cmd.Flags().StringVar(&isbn, "isbn", "", "exact ISBN-10 or ISBN-13")
	return cmd
}

// pickEdition pages through the candidates until the user picks one or
// quits.
func (a *App) pickEdition(ctx context.Context, p *picker.Picker) error {
	for {
		page := p.CurrentPage()
		fmt.Printf("Results page %d:\n", p.PageIndex()+1)
		for i, e := range page {
			cover := "no cover"
			if e.CoverID != 0 {
				cover = a.Catalog.CoverURL(e.CoverID)
			}
			fmt.Printf("  %d) %s by %s [%s] (%s)\n", i+1, e.Title, e.AuthorLine(), e.Key, cover)
		}

		hint := "Pick a number"
		if p.CanPrev() {
			hint += ", p for previous"
		}
		if p.CanNext() {
			hint += ", n for next"
		}
		answer, err := a.prompt(hint + ", q to quit: ")
		if err != nil {
			return err
		}

		switch answer {
		case "q":
			return nil
		case "n":
			if p.CanNext() {
				p.ChangePage(1)
			}
		case "p":
			if p.CanPrev() {
				p.ChangePage(-1)
			}
		default:
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(page) {
				fmt.Println("Not a valid choice")
				continue
			}
			index := p.PageIndex()*config.Opts.PageSize + n - 1
			if err := p.Select(ctx, index); err != nil {
				return err
			}
			if pages := p.Pages(); pages > 0 {
				fmt.Printf("Pages: %d\n", pages)
			}
			return nil
		}
	}
}
