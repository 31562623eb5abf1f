package repository

import (
	"claimdesk/schema"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := schema.InitializeDatabase(db); err != nil {
		t.Fatalf("InitializeDatabase: %v", err)
	}
	return db
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	if _, found, err := repo.Load(CurrentUserSessionKey); err != nil || found {
		t.Fatalf("Load on empty table: found=%v err=%v", found, err)
	}

	if err := repo.Save(CurrentUserSessionKey, `{"id":"1"}`); err != nil {
		t.Fatalf("Save: %v", err)
	}
	payload, found, err := repo.Load(CurrentUserSessionKey)
	if err != nil || !found || payload != `{"id":"1"}` {
		t.Fatalf("Load = %q, %v, %v", payload, found, err)
	}

	// overwrite keeps a single row
	if err := repo.Save(CurrentUserSessionKey, `{"id":"2"}`); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	payload, _, _ = repo.Load(CurrentUserSessionKey)
	if payload != `{"id":"2"}` {
		t.Errorf("payload after overwrite = %q", payload)
	}

	if err := repo.Delete(CurrentUserSessionKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := repo.Load(CurrentUserSessionKey); found {
		t.Error("record still present after Delete")
	}
	if err := repo.Delete(CurrentUserSessionKey); err != nil {
		t.Errorf("Delete of missing record: %v", err)
	}
}
