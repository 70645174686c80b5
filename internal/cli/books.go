package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage your book list",
	}
	cmd.AddCommand(
		newBooksListCmd(),
		newBooksRateCmd(),
		newBooksProgressCmd(),
		newBooksDeleteCmd(),
	)
	return cmd
}

func newBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your books",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			books, err := a.Client.ListBooks(ctx)
			if err != nil {
				return errors.New("could not load books")
			}
			if len(books) == 0 {
				fmt.Println("No books yet, try `bookmarkd add`")
				return nil
			}
			for _, b := range books {
				line := fmt.Sprintf("[%d] %s by %s (%s, %d/%d pages", b.ID, b.Title, b.Author, b.Status, b.PageProgress, b.TotalPages)
				if b.Rating != nil {
					line += fmt.Sprintf(", rated %d/5", *b.Rating)
				}
				fmt.Println(line + ")")
			}
			return nil
		}),
	}
}

func newBooksRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <book-id> <rating>",
		Short: "Rate a finished book",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			bookID, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid book id %q", args[0])
			}
			rating, err := strconv.Atoi(args[1])
			if err != nil || rating < 1 || rating > 5 {
				return errors.Errorf("rating must be 1-5, got %q", args[1])
			}
			if err := a.Client.UpdateBookRating(ctx, bookID, rating); err != nil {
				return errors.New("could not update rating")
			}
			fmt.Println("Rating saved")
			return nil
		}),
	}
}

func newBooksProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <book-id> <pages>",
		Short: "Update reading progress",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			bookID, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid book id %q", args[0])
			}
			pages, err := strconv.Atoi(args[1])
			if err != nil || pages < 0 {
				return errors.Errorf("invalid page count %q", args[1])
			}
			if err := a.Client.UpdateBookProgress(ctx, bookID, pages); err != nil {
				return errors.New("could not update progress")
			}
			fmt.Println("Progress saved")
			return nil
		}),
	}
}

func newBooksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <book-id>",
		Short: "Remove a book from your list",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			bookID, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid book id %q", args[0])
			}
			if err := a.Client.DeleteBook(ctx, bookID); err != nil {
				return errors.New("could not delete book")
			}
			fmt.Println("Book removed")
			return nil
		}),
	}
}
