package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

func newClubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "Browse book clubs",
	}
	cmd.AddCommand(newClubsListCmd(), newClubsCreateCmd(), newClubsFeedCmd())
	return cmd
}

func newClubsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clubs you can join",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			clubs, err := a.Client.ListClubs(ctx)
			if err != nil {
				return errors.New("could not load clubs")
			}
			if len(clubs) == 0 {
				fmt.Println("No clubs to join")
				return nil
			}
			for _, c := range clubs {
				fmt.Printf("[%d] %s (%s): %s\n", c.ID, c.Name, c.Slug, c.Description)
			}
			return nil
		}),
	}
}

func newClubsCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a club, you join it automatically",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			club, err := a.Client.CreateClub(ctx, model.CreateClubRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return errors.New("could not create club")
			}
			fmt.Printf("Created %s (%s)\n", club.Name, club.Slug)
			return nil
		}),
	}
	cmd.Flags().StringVar(&description, "description", "", "club description")
	return cmd
}

// The discussion feed is not served by the backend yet, the threads
// below stand in until the messaging component lands.
// TODO: replace with /api/clubs/:slug/feed once the backend implements it
var mockThreads = []struct {
	Club   string
	Title  string
	Author string
	Posts  int
}{
	{"sci-fi-circle", "Project Hail Mary, chapters 1-10", "mira", 23},
	{"sci-fi-circle", "Best first-contact novels?", "theo", 41},
	{"slow-readers", "Reading 10 pages a day actually works", "june", 17},
	{"classics-club", "Middlemarch check-in, week 3", "priya", 9},
}

func newClubsFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Browse recent club discussion threads",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}
			for _, t := range mockThreads {
				fmt.Printf("#%s  %s (started by %s, %d posts)\n", t.Club, t.Title, t.Author, t.Posts)
			}
			return nil
		}),
	}
}
