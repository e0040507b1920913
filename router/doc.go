// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ranked-pick tally service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

conn is the optional ballot database and may be nil.

# Endpoints

Health:

	GET /health

Tallies:

	GET  /methods              - Supported methods and menu numbers
	POST /tallies              - Count ballot lines sent in the body
	GET  /elections/{id}/tally - Count an election's stored ballots

Root:

	GET / - API banner

Tally routes are wrapped with middleware.WithLogging.
*/
package router
