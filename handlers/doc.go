// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the tally service.

# Handler Types

TallyHandler holds an optional database connection and the config:

	tallyHandler := handlers.NewTallyHandler(conn, cfg)

conn may be nil; the election endpoint then answers 503.

# Endpoints

	POST /tallies             → CreateTally (ballot lines in the body)
	GET  /elections/{id}/tally → TallyElection (stored ballot lines)
	GET  /methods             → ListMethods

A tally request names a method and lists ballot lines:

	{"method": "irv", "ballots": ["4 A,B,C", "3 B,C,A", "2 C,B,A"]}

The method may be a name (plurality, irv, borda, condorcet) or a menu
number (1 IRV, 2 Borda, 3 Condorcet, other Plurality). An empty method
falls back to the configured method, then Plurality. Lines expanding to more
than ballot.MaxBallots ballots are rejected with 400 (422 for a stored
election).

# Responses

Every tally gets a fresh tally_id (UUID). The response carries the winner
("Tie" when there is none), the standings, the text report and, depending
on the method, the IRV rounds or the Condorcet pairwise matrix. Nothing is
stored between requests.
*/
package handlers
