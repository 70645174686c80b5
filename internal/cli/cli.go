// Package cli holds the terminal views: thin cobra commands that call
// the gateway, print results and reload after mutations. Error
// presentation is the gateway's job, views only manage their own state.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/api"
	"github.com/bookmarkd/bookmarkd/internal/auth"
	"github.com/bookmarkd/bookmarkd/internal/catalog"
	"github.com/bookmarkd/bookmarkd/internal/config"
	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/session"
	"github.com/bookmarkd/bookmarkd/internal/store"
)

type App struct {
	Store   *store.Store
	Session *session.Manager
	Client  *api.Client
	Catalog *catalog.Client
	Flow    *auth.Flow

	stdin *bufio.Reader
}

func NewApp() (*App, error) {
	st, err := store.Open(config.Opts.DSN)
	if err != nil {
		return nil, err
	}
	sess, err := session.NewManager(st)
	if err != nil {
		st.Close()
		return nil, err
	}

	client := api.NewClient(config.Opts.APIBaseURL, sess, api.StderrNotifier{})
	cat := catalog.NewClient(config.Opts.CatalogBaseURL, config.Opts.CoverBaseURL, config.Opts.SearchLimit)

	return &App{
		Store:   st,
		Session: sess,
		Client:  client,
		Catalog: cat,
		Flow:    auth.NewFlow(client, sess),
		stdin:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() {
	a.Store.Close()
}

// RequireUser resolves the startup verification once and fails when no
// session remains afterwards.
func (a *App) RequireUser(ctx context.Context) (*model.User, error) {
	if err := a.Flow.Bootstrap(ctx); err != nil {
		return nil, err
	}
	if a.Session.Status() != session.Authenticated {
		return nil, errors.New("not logged in, run `bookmarkd login` first")
	}
	return a.Session.User(), nil
}

func (a *App) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := a.stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AddCommands registers every view on the root command.
func AddCommands(root *cobra.Command) {
	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newBooksCmd(),
		newAddCmd(),
		newGoalsCmd(),
		newClubsCmd(),
		newRecommendCmd(),
		newHealthCmd(),
	)
}

// withApp wraps a command handler with app construction and teardown.
func withApp(run func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := NewApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd.Context(), a, args)
	}
}
