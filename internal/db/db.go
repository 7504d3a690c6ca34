// Package db opens the SQLite file that stores contact inquiries and their
// notification log. Listings are never stored; the catalog API owns them.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// connParams are go-sqlite3 DSN options. They are applied to every pooled
// connection, which foreign_keys requires for the notification log to
// cascade when an inquiry is deleted.
var connParams = url.Values{
	"_journal_mode": {"WAL"},
	"_foreign_keys": {"on"},
	"_busy_timeout": {"5000"},
	"_txlock":       {"immediate"},
}

// DefaultPath returns ~/.config/cnk/cnk.db, next to the config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cnk", "cnk.db"), nil
}

// Open opens or creates the inquiry database at path and brings its schema
// up to date. The directory is created private to the user since inquiries
// carry names, e-mail addresses and phone numbers.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, closeOnErr(db, fmt.Errorf("connecting to %s: %w", path, err))
	}
	if err := migrate(db); err != nil {
		return nil, closeOnErr(db, fmt.Errorf("running migrations: %w", err))
	}

	return db, nil
}

func dsn(path string) string {
	return "file:" + path + "?" + connParams.Encode()
}

func closeOnErr(db *sql.DB, err error) error {
	if closeErr := db.Close(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("closing database: %w", closeErr))
	}
	return err
}
