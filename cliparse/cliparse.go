// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Method       string
	InputPath    string
	Serve        bool
	Port         int
	DatabaseURL  string
	DatabaseType string
	Election     string
	Verbose      bool
}

// ParseFlags reads flags, then .env and environment variables for anything unset
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// .env never overrides variables already in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("ranked-pick", flag.ContinueOnError)

	// Tally config
	fs.StringVar(&cfg.Method, "m", "", "Tally method (plurality, irv, borda, condorcet or 0-3)")
	fs.StringVar(&cfg.InputPath, "f", "", "Read ballot lines from file instead of stdin")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	// Network config
	fs.BoolVar(&cfg.Serve, "serve", false, "Run the HTTP tally service")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Ballot source
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL to load ballots from")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Election, "e", "", "Election ID to load from the database")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Method == "" {
		cfg.Method = os.Getenv("TALLY_METHOD")
	}
	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("BALLOT_FILE")
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.Election == "" {
		cfg.Election = os.Getenv("ELECTION_ID")
	}
	if cfg.DatabaseURL != "" && cfg.Election == "" {
		return Config{}, errors.New("election ID required with a database (use -e or ELECTION_ID env)")
	}

	return cfg, nil
}
