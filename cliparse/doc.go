// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Method: Tally method name or menu number (empty: ask on the console)
  - InputPath: Ballot file (empty: stdin)
  - Serve: Run the HTTP tally service instead of the console
  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database to load ballots from (optional)
  - DatabaseType: sqlite (default) or postgres
  - Election: Election whose ballots are loaded (required with DatabaseURL)
  - Verbose: Debug logging

# CLI Flags

	-m      Tally method
	-f      Ballot file
	-serve  Run the HTTP service
	-p      Server port
	-d      Database URL
	-t      Database type
	-e      Election ID
	-v      Debug logging

# Environment Variables

Flags fall back to environment variables:

	TALLY_METHOD  → -m
	BALLOT_FILE   → -f
	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ELECTION_ID   → -e

A .env file in the working directory is loaded first. Variables already
set in the environment are not overridden by it.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is not an integer
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is set without ELECTION_ID
*/
package cliparse
