package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if err := a.Client.Health(ctx); err != nil {
				return errors.New("backend is not reachable")
			}
			fmt.Println("Backend is up")
			return nil
		}),
	}
}
