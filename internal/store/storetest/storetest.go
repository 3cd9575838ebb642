// Package storetest builds SQLite databases with the account schema for tests.
package storetest

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ApplyMigrations creates (or upgrades) the database at dbPath to the latest
// schema version.
func ApplyMigrations(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("can not create database directory : %w", err)
	}

	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	return runMigrations(db)
}

// Open opens dbPath for writing, creating the file if needed.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+(&url.URL{Path: dbPath}).EscapedPath()+"?mode=rwc&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	return db, nil
}

func runMigrations(db *sql.DB) error {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// NewDB migrates a database named name inside dir and runs stmts against it.
// It returns the database path.
func NewDB(t testing.TB, dir, name string, stmts ...string) string {
	t.Helper()

	dbPath := filepath.Join(dir, name)
	require.NoError(t, ApplyMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return dbPath
}
