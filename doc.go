// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for ranked-pick.

ranked-pick counts ranked-preference ballots under Plurality, Borda Count,
Instant Runoff or Condorcet and reports the winner, or Tie.

# Console

With no flags the program asks for a rule and reads ballot lines from stdin
until a line reading \go:

	$ go run .
	Enter 1 for instant runoff voting, 2 for the Borda Count, 3 for
	the Condorcet Method, and any other int for plurality voting
	1
	Enter input now. Then enter \go to compute results.
	4 A,B,C
	3 B,C,A
	2 C,B,A
	\go
	WINNER: B

The rule can be given up front and the lines read from a file:

	go run . -m irv -f ballots.txt

# Stored elections

With a database, the ballots of one election are counted. A ballot file is
appended to the election (created if needed) before counting:

	go run . -d ranked.db -e club -f ballots.txt -m borda
	go run . -t postgres -d postgres://... -e club

# Server

	go run . -serve -p 3318

serves POST /tallies, GET /methods and, with -d, GET /elections/{id}/tally.

# Configuration

  - TALLY_METHOD (-m): Rule name or selector
  - BALLOT_FILE (-f): Ballot file
  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d), DATABASE_TYPE (-t), ELECTION_ID (-e): Ballot database
  - -v: Debug logging

# Architecture

  - ballot: Ballot type and ballot line parsing
  - tally: The four counting rules
  - poll: Console front-end
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema and stored ballot lines
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
