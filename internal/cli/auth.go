package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/session"
	"github.com/bookmarkd/bookmarkd/internal/validator"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.prompt("Password: "); err != nil {
					return err
				}
			}
			if err := validator.ValidateLoginRequest(&model.LoginRequest{Email: email, Password: password}); err != nil {
				return err
			}

			user, err := a.Flow.Login(ctx, email, password)
			if err != nil {
				return errors.New("login failed")
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Username, user.Email)
			return nil
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var email, password, username string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}
			if username == "" {
				if username, err = a.prompt("Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.prompt("Password: "); err != nil {
					return err
				}
			}
			req := model.RegisterRequest{Email: email, Password: password, Username: username}
			if err := validator.ValidateRegisterRequest(&req); err != nil {
				return err
			}

			user, err := a.Flow.Register(ctx, email, password, username)
			if err != nil {
				return errors.New("registration failed")
			}
			fmt.Printf("Welcome, %s <%s>\n", user.Username, user.Email)
			return nil
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&username, "username", "", "display name")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out, clearing the stored session",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if err := a.Flow.Logout(ctx); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		}),
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: withApp(func(ctx context.Context, a *App, args []string) error {
			if err := a.Flow.Bootstrap(ctx); err != nil {
				return err
			}
			if a.Session.Status() != session.Authenticated {
				fmt.Println("Not logged in")
				return nil
			}
			user := a.Session.User()
			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			return nil
		}),
	}
}
