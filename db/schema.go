// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements are valid for both PostgreSQL and SQLite.
const schema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    method TEXT NOT NULL DEFAULT 'plurality',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Ballot lines, "[count ]ranking" as typed at the console
CREATE TABLE IF NOT EXISTS ballot_line (
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    line_no INTEGER NOT NULL,
    ranking TEXT NOT NULL,
    PRIMARY KEY (election_id, line_no)
);

CREATE INDEX IF NOT EXISTS idx_ballot_line_election_id ON ballot_line(election_id);
`
