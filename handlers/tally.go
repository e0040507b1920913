// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/ranked-pick/ballot"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
	"github.com/danielhkuo/ranked-pick/tally"
)

type TallyHandler struct {
	db  *sql.DB // nil when no ballot database is configured
	cfg cliparse.Config
}

func NewTallyHandler(conn *sql.DB, cfg cliparse.Config) *TallyHandler {
	return &TallyHandler{db: conn, cfg: cfg}
}

// CreateTally handles POST /tallies
// Counts the ballot lines in the request body; nothing is stored.
// A request without a method uses the configured one (-m / TALLY_METHOD)
func (h *TallyHandler) CreateTally(w http.ResponseWriter, r *http.Request) {
	var req models.TallyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	requested := req.Method
	if requested == "" {
		requested = h.cfg.Method
	}
	method, err := tally.ParseMethod(requested)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ballots, err := ballot.Expand(req.Ballots)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(ballots) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one ballot is required")
		return
	}

	h.respond(w, method, ballots)
}

// TallyElection handles GET /elections/{id}/tally
// Counts stored ballots; ?method= overrides the election's method
func (h *TallyHandler) TallyElection(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No ballot database configured")
		return
	}

	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	election, ballots, err := db.LoadBallots(r.Context(), h.db, electionID)
	if errors.Is(err, db.ErrElectionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if errors.Is(err, ballot.ErrTooManyBallots) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to load ballots", "error", err, "election_id", electionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	requested := r.URL.Query().Get("method")
	if requested == "" {
		requested = election.Method
	}
	method, err := tally.ParseMethod(requested)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, method, ballots)
}

// ListMethods handles GET /methods
func (h *TallyHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	resp := models.MethodsResponse{}
	for _, m := range tally.Methods() {
		resp.Methods = append(resp.Methods, models.MethodInfo{
			Method:   string(m),
			Selector: m.Selector(),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func (h *TallyHandler) respond(w http.ResponseWriter, method tally.Method, ballots []*ballot.Ballot) {
	t := tally.New(method, ballots)

	resp := NewTallyResponse(t)
	resp.TallyID = uuid.NewString()

	slog.Info("tally computed",
		"tally_id", resp.TallyID,
		"method", resp.Method,
		"ballots", resp.BallotCount,
		"winner", resp.Winner,
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// NewTallyResponse converts a finished tally into its JSON form
func NewTallyResponse(t tally.Tally) models.TallyResponse {
	resp := models.TallyResponse{
		Method:      string(t.Method()),
		Winner:      t.Winner(),
		BallotCount: t.BallotCount(),
		Candidates:  t.Candidates(),
		Report:      t.Results(),
	}
	if resp.Candidates == nil {
		resp.Candidates = []string{}
	}

	standings := t.Standings()
	resp.Standings = make([]models.Standing, 0, len(standings))
	for _, s := range standings {
		resp.Standings = append(resp.Standings, models.Standing{
			Candidate: s.Candidate,
			Votes:     s.Votes,
			Rank:      s.Rank,
		})
	}

	switch v := t.(type) {
	case *tally.InstantRunoff:
		for _, rd := range v.Rounds() {
			resp.Rounds = append(resp.Rounds, models.Round{
				Number:     rd.Number,
				Votes:      rd.Votes,
				Eliminated: rd.Eliminated,
			})
		}
	case *tally.Condorcet:
		resp.Pairwise = v.Matrix()
	}

	return resp
}
