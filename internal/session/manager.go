// Package session owns the authentication state: the durable token and the
// in-memory current user. The gateway and the auth flow get it injected
// instead of reaching into globals.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

type Status int

const (
	// Indeterminate means a token exists but the startup verification has
	// not resolved yet. Views must not treat this as logged out.
	Indeterminate Status = iota
	Authenticated
	Unauthenticated
)

func (s Status) String() string {
	switch s {
	case Indeterminate:
		return "indeterminate"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// TokenStore is the durable slot behind the manager.
type TokenStore interface {
	GetToken() (string, error)
	SetToken(token string) error
	ClearToken() error
}

type Manager struct {
	mu     sync.Mutex
	store  TokenStore
	token  string
	user   *model.User
	status Status
	// gen increments on every state write. In-flight auth completions
	// snapshot it via Begin and are discarded when it moved on, so a
	// verify finishing after a logout cannot resurrect the session.
	gen uint64
}

func NewManager(store TokenStore) (*Manager, error) {
	m := &Manager{store: store, status: Unauthenticated}

	token, err := store.GetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session token")
	}
	if token == "" {
		return m, nil
	}
	if expired(token) {
		// Expected transition, clear silently.
		if err := store.ClearToken(); err != nil {
			return nil, errors.Wrap(err, "failed to drop expired token")
		}
		return m, nil
	}

	m.token = token
	m.status = Indeterminate
	return m, nil
}

// expired reports whether the token is a JWT whose exp claim already
// passed. Opaque or claimless tokens are left for the backend to judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Begin snapshots the current generation for a pending auth attempt.
func (m *Manager) Begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// SetSession installs a fresh session after a successful login or
// register. This is a user-initiated write, so it always applies.
func (m *Manager) SetSession(token string, user model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetToken(token); err != nil {
		return errors.Wrap(err, "failed to persist session token")
	}
	m.token = token
	m.user = &user
	m.status = Authenticated
	m.gen++
	return nil
}

// ResolveIf applies the outcome of the startup verification, but only if
// no other state write happened since gen was taken. A nil user means the
// backend rejected the token; the stored token is dropped without being
// reported as an error.
func (m *Manager) ResolveIf(gen uint64, user *model.User) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return false
	}
	if user == nil {
		m.store.ClearToken()
		m.token = ""
		m.user = nil
		m.status = Unauthenticated
	} else {
		m.user = user
		m.status = Authenticated
	}
	m.gen++
	return true
}

// Clear drops local session state. It never fails on a missing slot and
// always leaves the manager unauthenticated.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.ClearToken()
	m.token = ""
	m.user = nil
	m.status = Unauthenticated
	m.gen++
	return errors.Wrap(err, "failed to clear session token")
}
