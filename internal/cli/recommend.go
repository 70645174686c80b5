package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

func newRecommendCmd() *cobra.Command {
	var survey model.Survey

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Answer the preference survey and get book recommendations",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if _, err := a.RequireUser(ctx); err != nil {
				return err
			}

			var err error
			if survey.Genre == "" {
				if survey.Genre, err = a.prompt("Favorite genre: "); err != nil {
					return err
				}
			}
			if survey.Length == "" {
				if survey.Length, err = a.prompt("Preferred length (short/medium/long): "); err != nil {
					return err
				}
			}
			if survey.Series == "" {
				if survey.Series, err = a.prompt("Series or standalone: "); err != nil {
					return err
				}
			}
			if survey.SimilarBooks == "" {
				if survey.SimilarBooks, err = a.prompt("Books you enjoyed: "); err != nil {
					return err
				}
			}
			if survey.Mood == "" {
				if survey.Mood, err = a.prompt("Current reading mood: "); err != nil {
					return err
				}
			}

			resp, err := a.Client.Recommendations(ctx, survey)
			if err != nil {
				return errors.New("could not get recommendations")
			}
			if len(resp.Recommendations) == 0 {
				fmt.Println("Nothing recommended, try different answers")
				return nil
			}
			for i, rec := range resp.Recommendations {
				// Recommendation entries are free-form, print the fields we
				// recognize and fall back to raw JSON.
				var book struct {
					Title  string `json:"title"`
					Author string `json:"author"`
				}
				if err := json.Unmarshal(rec, &book); err == nil && book.Title != "" {
					fmt.Printf("%d. %s by %s\n", i+1, book.Title, book.Author)
				} else {
					fmt.Printf("%d. %s\n", i+1, string(rec))
				}
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&survey.Genre, "genre", "", "favorite genre")
	cmd.Flags().StringVar(&survey.Length, "length", "", "preferred book length")
	cmd.Flags().StringVar(&survey.Series, "series", "", "series or standalone")
	cmd.Flags().StringVar(&survey.SimilarBooks, "similar", "", "books you enjoyed")
	cmd.Flags().StringVar(&survey.Mood, "mood", "", "current reading mood")
	return cmd
}
