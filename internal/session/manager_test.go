package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

type memStore struct {
	token string
}

func (m *memStore) GetToken() (string, error) { return m.token, nil }
func (m *memStore) SetToken(t string) error   { m.token = t; return nil }
func (m *memStore) ClearToken() error         { m.token = ""; return nil }

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return s
}

func TestNewManagerNoToken(t *testing.T) {
	m, err := NewManager(&memStore{})
	if err != nil {
		t.Fatal(err)
	}
	if m.Status() != Unauthenticated {
		t.Fatalf("Expected unauthenticated, got %s", m.Status())
	}
}

func TestNewManagerWithTokenIsIndeterminate(t *testing.T) {
	// Startup with a stored token must not flash "logged out" while the
	// verification is pending.
	m, err := NewManager(&memStore{token: "opaque-token"})
	if err != nil {
		t.Fatal(err)
	}
	if m.Status() != Indeterminate {
		t.Fatalf("Expected indeterminate, got %s", m.Status())
	}
	if m.Token() != "opaque-token" {
		t.Fatalf("Token not loaded")
	}
}

func TestNewManagerDropsExpiredToken(t *testing.T) {
	store := &memStore{token: signedToken(t, time.Now().Add(-time.Hour))}
	m, err := NewManager(store)
	if err != nil {
		t.Fatal(err)
	}
	if m.Status() != Unauthenticated {
		t.Fatalf("Expired token should leave manager unauthenticated, got %s", m.Status())
	}
	if store.token != "" {
		t.Fatalf("Expired token should be cleared from the store")
	}
}

func TestNewManagerKeepsUnexpiredJWT(t *testing.T) {
	store := &memStore{token: signedToken(t, time.Now().Add(time.Hour))}
	m, err := NewManager(store)
	if err != nil {
		t.Fatal(err)
	}
	if m.Status() != Indeterminate {
		t.Fatalf("Valid token should leave manager indeterminate, got %s", m.Status())
	}
}

func TestResolveIfApplies(t *testing.T) {
	m, _ := NewManager(&memStore{token: "opaque-token"})
	gen := m.Begin()

	if !m.ResolveIf(gen, &model.User{Username: "ada", Email: "ada@example.com"}) {
		t.Fatalf("Resolve with current generation should apply")
	}
	if m.Status() != Authenticated {
		t.Fatalf("Expected authenticated, got %s", m.Status())
	}
	if m.User() == nil || m.User().Username != "ada" {
		t.Fatalf("User not populated")
	}
}

func TestResolveIfRejectedTokenClearsSilently(t *testing.T) {
	store := &memStore{token: "opaque-token"}
	m, _ := NewManager(store)
	gen := m.Begin()

	if !m.ResolveIf(gen, nil) {
		t.Fatalf("Resolve with current generation should apply")
	}
	if m.Status() != Unauthenticated {
		t.Fatalf("Rejected token should end unauthenticated, got %s", m.Status())
	}
	if store.token != "" {
		t.Fatalf("Rejected token should be removed from the store")
	}
}

func TestStaleVerifyCannotResurrectSession(t *testing.T) {
	store := &memStore{token: "opaque-token"}
	m, _ := NewManager(store)

	gen := m.Begin()
	if err := m.Clear(); err != nil {
		t.Fatal(err)
	}

	// The verify that was in flight before the logout now completes.
	if m.ResolveIf(gen, &model.User{Username: "ada"}) {
		t.Fatalf("Stale resolve should be discarded")
	}
	if m.Status() != Unauthenticated {
		t.Fatalf("Session resurrected after logout, got %s", m.Status())
	}
	if m.User() != nil {
		t.Fatalf("User resurrected after logout")
	}
}

func TestSetSessionPersistsToken(t *testing.T) {
	store := &memStore{}
	m, _ := NewManager(store)
	if err := m.SetSession("tok-1", model.User{Username: "ada", Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}
	if store.token != "tok-1" {
		t.Fatalf("Token not persisted")
	}
	if m.Status() != Authenticated {
		t.Fatalf("Expected authenticated, got %s", m.Status())
	}
}
