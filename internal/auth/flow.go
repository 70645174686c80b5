// Package auth sequences the session lifecycle: startup verification,
// login, register, logout.
package auth

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmarkd/bookmarkd/internal/api"
	"github.com/bookmarkd/bookmarkd/internal/log"
	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/session"
)

type Flow struct {
	client  *api.Client
	session *session.Manager
}

func NewFlow(client *api.Client, sess *session.Manager) *Flow {
	return &Flow{client: client, session: sess}
}

// Bootstrap resolves an indeterminate session by verifying the stored
// token exactly once. A rejected token is dropped silently, that is a
// normal outcome, not a failure. The result is applied through the
// generation guard, so an explicit logout racing this verification wins.
func (f *Flow) Bootstrap(ctx context.Context) error {
	if f.session.Status() != session.Indeterminate {
		return nil
	}

	gen := f.session.Begin()
	resp, err := f.client.Me(ctx)
	if err != nil {
		log.Debug("Token verification failed", zap.Error(err))
		f.session.ResolveIf(gen, nil)
		return nil
	}
	f.session.ResolveIf(gen, &resp.User)
	return nil
}

func (f *Flow) Login(ctx context.Context, email, password string) (*model.User, error) {
	resp, err := f.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := f.session.SetSession(resp.Token, resp.User); err != nil {
		return nil, errors.Wrap(err, "login succeeded but session could not be stored")
	}
	return &resp.User, nil
}

func (f *Flow) Register(ctx context.Context, email, password, username string) (*model.User, error) {
	resp, err := f.client.Register(ctx, email, password, username)
	if err != nil {
		return nil, err
	}
	if err := f.session.SetSession(resp.Token, resp.User); err != nil {
		return nil, errors.Wrap(err, "registration succeeded but session could not be stored")
	}
	return &resp.User, nil
}

// Logout tells the backend, then clears local state no matter what the
// backend said. The local clear is unconditional.
func (f *Flow) Logout(ctx context.Context) error {
	if err := f.client.Logout(ctx); err != nil {
		log.Warn("Backend logout failed, clearing local session anyway", zap.Error(err))
	}
	return f.session.Clear()
}
