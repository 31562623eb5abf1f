// Package schema: safe database initialization — create only missing tables, never drop or overwrite.

package schema

import (
	"database/sql"
	"fmt"
	"log"
)

// TableUserSessions stores the persisted operator session record
const TableUserSessions = "user_sessions"

// InitializeDatabase ensures the session table exists. Uses CREATE TABLE IF NOT EXISTS with
// DDL accepted by both MySQL and SQLite; does not drop or recreate tables; does not remove data.
func InitializeDatabase(db *sql.DB) error {
	q := `
CREATE TABLE IF NOT EXISTS user_sessions (
    session_key VARCHAR(64) NOT NULL PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("failed to create table %s: %w", TableUserSessions, err)
	}
	log.Printf("[SCHEMA] %s table ready", TableUserSessions)
	return nil
}
