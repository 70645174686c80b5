package store

import (
	"database/sql"

	"github.com/pkg/errors"
)

// tokenKey is the fixed name of the session slot. At most one token is
// active per client.
const tokenKey = "token"

// GetToken returns the stored session token, or empty string when
// unauthenticated.
func (s *Store) GetToken() (string, error) {
	var value string
	stmt := `
	SELECT value FROM session WHERE name = ?
	`
	if err := s.db.QueryRow(stmt, tokenKey).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to read session token")
	}
	return value, nil
}

func (s *Store) SetToken(token string) error {
	stmt := `
	INSERT INTO session (name, value)
	VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE
	SET
		value = EXCLUDED.value,
		updated_ts = strftime('%s', 'now')
	`
	if _, err := s.db.Exec(stmt, tokenKey, token); err != nil {
		return errors.Wrap(err, "failed to store session token")
	}
	return nil
}

func (s *Store) ClearToken() error {
	stmt := `
	DELETE FROM session WHERE name = ?
	`
	if _, err := s.db.Exec(stmt, tokenKey); err != nil {
		return errors.Wrap(err, "failed to clear session token")
	}
	return nil
}
