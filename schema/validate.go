// Package schema provides startup validation of required DB columns to prevent schema-code mismatch.
package schema

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// RequiredColumn defines a required column for a table.
type RequiredColumn struct {
	Table  string
	Column string
}

// DefaultRequiredColumns returns the columns the session repository reads and writes.
// If any are missing, the server should not start.
var DefaultRequiredColumns = []RequiredColumn{
	{Table: TableUserSessions, Column: "session_key"},
	{Table: TableUserSessions, Column: "payload"},
	{Table: TableUserSessions, Column: "updated_at"},
}

// ValidateRequiredColumns checks that all required columns exist and reports every missing one.
func ValidateRequiredColumns(db *sql.DB, required []RequiredColumn) error {
	if len(required) == 0 {
		required = DefaultRequiredColumns
	}
	var missing []string
	for _, rc := range required {
		if !columnExists(db, rc.Table, rc.Column) {
			missing = append(missing, rc.Table+"."+rc.Column)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns (run migrations to fix): %s", strings.Join(missing, ", "))
	}
	log.Println("[SCHEMA] Required columns verified")
	return nil
}

// columnExists probes with an empty select; works on any driver without information_schema.
func columnExists(db *sql.DB, table, column string) bool {
	rows, err := db.Query("SELECT " + column + " FROM " + table + " WHERE 1 = 0")
	if err != nil {
		return false
	}
	rows.Close()
	return true
}
