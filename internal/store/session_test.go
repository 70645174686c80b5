package store

import (
	"path/filepath"
	"testing"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bookmarkd-test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTokenRoundTrip(t *testing.T) {
	s := createTestStore(t)

	token, err := s.GetToken()
	if err != nil {
		t.Fatalf("Failed to get token: %v", err)
	}
	if token != "" {
		t.Fatalf("Fresh store should hold no token, got %q", token)
	}

	if err := s.SetToken("abc123"); err != nil {
		t.Fatalf("Failed to set token: %v", err)
	}
	token, err = s.GetToken()
	if err != nil {
		t.Fatalf("Failed to get token: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("Expected abc123, got %q", token)
	}

	// Setting again replaces, never accumulates
	if err := s.SetToken("def456"); err != nil {
		t.Fatalf("Failed to replace token: %v", err)
	}
	token, _ = s.GetToken()
	if token != "def456" {
		t.Fatalf("Expected def456, got %q", token)
	}
}

func TestClearToken(t *testing.T) {
	s := createTestStore(t)

	if err := s.SetToken("abc123"); err != nil {
		t.Fatalf("Failed to set token: %v", err)
	}
	if err := s.ClearToken(); err != nil {
		t.Fatalf("Failed to clear token: %v", err)
	}
	token, err := s.GetToken()
	if err != nil {
		t.Fatalf("Failed to get token: %v", err)
	}
	if token != "" {
		t.Fatalf("Token should be gone after clear, got %q", token)
	}

	// Clearing an empty slot is not an error
	if err := s.ClearToken(); err != nil {
		t.Fatalf("Clearing empty slot failed: %v", err)
	}
}
