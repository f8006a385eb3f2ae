package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Config holds archive database configuration
type Config struct {
	Path string
}

// Open opens the archive database and returns an explicit handle. The
// archive is a single logical reader per run; callers must not share the
// handle across concurrent extractions.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", cfg.Path, err)
	}

	// One logical reader; the sqlite driver serializes on a single
	// connection, matching the archive's read-cache assumption.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA query_only=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set archive read-only: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open archive %s: %w", cfg.Path, err)
	}

	log.Printf("Archive opened: %s", cfg.Path)
	return db, nil
}
