package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	if err != nil {
		t.Fatalf("tableExists query failed: %v", err)
	}
	return n > 0
}

func TestInitDatabase_CreatesDBAndGooseVersionTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn)
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("db.PingContext failed: %v", err)
	}

	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table to exist after migrations")
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (first) error: %v", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (second) should be idempotent, got error: %v", err)
	}

	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table to exist after repeated migrations")
	}
}

func TestInitDatabase_KVKeyIsUnique(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES ('records:alice', x'00')`); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES ('records:alice', x'01')`); err == nil {
		t.Fatalf("expected duplicate key to be rejected")
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES ('records:bob', NULL)`); err == nil {
		t.Fatalf("expected NULL value to be rejected")
	}
}

func TestInitDatabase_BadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "app.db")
	if db, err := InitDatabase(context.Background(), dsn); err == nil {
		_ = db.Close()
		t.Fatalf("expected an error for a path whose directory does not exist")
	}
}

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer db.Close()

	if !tableExists(t, db, "kv") {
		t.Fatalf("expected kv table to exist after migrations")
	}
}

func TestInitDatabase_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn)
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES ('accounts', '{}')`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	_ = db.Close()

	db, err = InitDatabase(ctx, dsn)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer db.Close()

	var v string
	if err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = 'accounts'`).Scan(&v); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if v != "{}" {
		t.Fatalf("unexpected value: %q", v)
	}
}
