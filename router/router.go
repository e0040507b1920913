// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/handlers"
	"github.com/danielhkuo/ranked-pick/middleware"
)

// NewRouter registers every route. conn may be nil when no ballot database is configured.
func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	tallyHandler := handlers.NewTallyHandler(conn, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Tallies
	mux.HandleFunc("GET /methods", middleware.WithLogging(tallyHandler.ListMethods))
	mux.HandleFunc("POST /tallies", middleware.WithLogging(tallyHandler.CreateTally))
	mux.HandleFunc("GET /elections/{id}/tally", middleware.WithLogging(tallyHandler.TallyElection))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ranked-pick API v1"))
	})

	return mux
}
