package schema

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitializeDatabaseIsIdempotent(t *testing.T) {
	db := openDB(t)
	for i := 0; i < 2; i++ {
		if err := InitializeDatabase(db); err != nil {
			t.Fatalf("InitializeDatabase #%d: %v", i+1, err)
		}
	}
	if err := ValidateRequiredColumns(db, nil); err != nil {
		t.Errorf("ValidateRequiredColumns: %v", err)
	}
}

func TestValidateRequiredColumnsReportsMissing(t *testing.T) {
	db := openDB(t)
	if _, err := db.Exec("CREATE TABLE user_sessions (session_key TEXT PRIMARY KEY)"); err != nil {
		t.Fatal(err)
	}
	err := ValidateRequiredColumns(db, DefaultRequiredColumns)
	if err == nil {
		t.Fatal("expected missing columns error")
	}
	for _, col := range []string{"user_sessions.payload", "user_sessions.updated_at"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error %q does not name %s", err, col)
		}
	}
	if strings.Contains(err.Error(), "session_key") {
		t.Errorf("present column reported missing: %v", err)
	}
}
