package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// CurrentUserSessionKey is the fixed key the operator session is stored under
const CurrentUserSessionKey = "currentUser"

// SessionRepository persists the serialized session record (user_sessions table).
// It is the only state that survives a restart.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load returns the stored payload for key; found is false when no record exists
func (r *SessionRepository) Load(key string) (payload string, found bool, err error) {
	err = r.db.QueryRow(`SELECT payload FROM user_sessions WHERE session_key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load session: %w", err)
	}
	return payload, true, nil
}

// Save writes or overwrites the record stored under key
func (r *SessionRepository) Save(key, payload string) error {
	now := time.Now().UTC()
	// Upsert: if row exists for key, update; else insert.
	_, found, err := r.Load(key)
	if err != nil {
		return err
	}
	if found {
		_, err = r.db.Exec(
			`UPDATE user_sessions SET payload = ?, updated_at = ? WHERE session_key = ?`,
			payload, now, key,
		)
	} else {
		_, err = r.db.Exec(
			`INSERT INTO user_sessions (session_key, payload, updated_at) VALUES (?, ?, ?)`,
			key, payload, now,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes the record stored under key; deleting a missing record is not an error
func (r *SessionRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM user_sessions WHERE session_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
