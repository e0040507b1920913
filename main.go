// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/ranked-pick/ballot"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/db"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
	"github.com/danielhkuo/ranked-pick/poll"
	"github.com/danielhkuo/ranked-pick/router"
	"github.com/danielhkuo/ranked-pick/tally"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Open(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Debug("Database schema ready", "type", cfg.DatabaseType)
	}

	switch {
	case cfg.Serve:
		err = serve(cfg, dbConn)
	case dbConn != nil:
		err = tallyElection(context.Background(), cfg, dbConn)
	default:
		err = console(cfg)
	}
	if err != nil {
		slog.Error("ranked-pick failed", "error", err)
		os.Exit(1)
	}
}

func serve(cfg cliparse.Config, dbConn *sql.DB) error {
	// default method for requests that name none
	if _, err := tally.ParseMethod(cfg.Method); err != nil {
		return err
	}

	mux := router.NewRouter(dbConn, cfg)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}

// tallyElection counts an election's stored ballots. Lines from the ballot
// file, when one is given, are stored first.
func tallyElection(ctx context.Context, cfg cliparse.Config, dbConn *sql.DB) error {
	if cfg.InputPath != "" {
		if err := importBallots(ctx, cfg, dbConn); err != nil {
			return err
		}
	}

	election, ballots, err := db.LoadBallots(ctx, dbConn, cfg.Election)
	if err != nil {
		return err
	}

	requested := cfg.Method
	if requested == "" {
		requested = election.Method
	}
	method, err := tally.ParseMethod(requested)
	if err != nil {
		return err
	}

	t := tally.New(method, ballots)
	slog.Info("tally computed",
		"election_id", election.ID,
		"method", method,
		"ballots", t.BallotCount(),
		"winner", t.Winner(),
	)

	if err := poll.Print(os.Stdout, t); err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, poll.Summary(t))
	return err
}

func importBallots(ctx context.Context, cfg cliparse.Config, dbConn *sql.DB) error {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()

	lines, err := ballot.ScanLines(f)
	if err != nil {
		return err
	}

	method := ""
	if cfg.Method != "" {
		m, err := tally.ParseMethod(cfg.Method)
		if err != nil {
			return err
		}
		method = string(m)
	}

	if _, err := db.EnsureElection(ctx, dbConn, models.Election{ID: cfg.Election, Method: method}); err != nil {
		return err
	}
	if err := db.AppendBallotLines(ctx, dbConn, cfg.Election, lines); err != nil {
		return err
	}

	slog.Info("ballots stored", "election_id", cfg.Election, "lines", len(lines))
	return nil
}

func console(cfg cliparse.Config) error {
	var in io.Reader = os.Stdin
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	if cfg.InputPath != "" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("failed to open ballot file: %w", err)
		}
		defer f.Close()
		in = f
		interactive = false
	}

	s := &poll.Session{In: in, Out: os.Stdout, Interactive: interactive}
	return s.Run(cfg.Method)
}
