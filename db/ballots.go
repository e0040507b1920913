// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ranked-pick/ballot"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/models"
)

var ErrElectionNotFound = errors.New("election not found")

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == cliparse.DatabasePostgres {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return conn, nil
}

// CreateElection inserts an election with no ballots.
func CreateElection(ctx context.Context, db *sql.DB, e models.Election) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO election (id, title, method)
		VALUES ($1, $2, $3)
	`, e.ID, e.Title, e.Method)
	if err != nil {
		return fmt.Errorf("failed to insert election: %w", err)
	}
	return nil
}

// GetElection returns the election with the given ID.
func GetElection(ctx context.Context, db *sql.DB, id string) (models.Election, error) {
	var e models.Election
	err := db.QueryRowContext(ctx, `
		SELECT id, title, method FROM election WHERE id = $1
	`, id).Scan(&e.ID, &e.Title, &e.Method)

	if err == sql.ErrNoRows {
		return models.Election{}, fmt.Errorf("%w: %s", ErrElectionNotFound, id)
	}
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to query election: %w", err)
	}
	return e, nil
}

// EnsureElection returns the stored election with e's ID, creating it from e
// when it does not exist yet.
func EnsureElection(ctx context.Context, db *sql.DB, e models.Election) (models.Election, error) {
	existing, err := GetElection(ctx, db, e.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrElectionNotFound) {
		return models.Election{}, err
	}

	if e.Title == "" {
		e.Title = e.ID
	}
	if e.Method == "" {
		e.Method = "plurality"
	}
	if err := CreateElection(ctx, db, e); err != nil {
		return models.Election{}, err
	}
	return e, nil
}

// AppendBallotLines adds ballot lines after any already stored for the election.
func AppendBallotLines(ctx context.Context, db *sql.DB, electionID string, lines []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(line_no), 0) FROM ballot_line WHERE election_id = $1
	`, electionID).Scan(&last)
	if err != nil {
		return fmt.Errorf("failed to query last line: %w", err)
	}

	for i, line := range lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ballot_line (election_id, line_no, ranking)
			VALUES ($1, $2, $3)
		`, electionID, last+i+1, line)
		if err != nil {
			return fmt.Errorf("failed to insert ballot line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ballot lines: %w", err)
	}
	return nil
}

// GetBallotLines returns the stored lines for an election in entry order.
func GetBallotLines(ctx context.Context, db *sql.DB, electionID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT ranking FROM ballot_line
		WHERE election_id = $1
		ORDER BY line_no
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballot lines: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan ballot line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// LoadBallots returns the election and its ballots, repeat counts expanded.
func LoadBallots(ctx context.Context, db *sql.DB, electionID string) (models.Election, []*ballot.Ballot, error) {
	e, err := GetElection(ctx, db, electionID)
	if err != nil {
		return models.Election{}, nil, err
	}

	lines, err := GetBallotLines(ctx, db, electionID)
	if err != nil {
		return models.Election{}, nil, err
	}

	ballots, err := ballot.Expand(lines)
	if err != nil {
		return models.Election{}, nil, fmt.Errorf("failed to expand ballots of %s: %w", electionID, err)
	}
	return e, ballots, nil
}
