// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/ranked-pick/ballot"
	"github.com/danielhkuo/ranked-pick/tally"
)

const (
	selectorPrompt = "Enter 1 for instant runoff voting, 2 for the Borda Count, 3 for\n" +
		"the Condorcet Method, and any other int for plurality voting"
	ballotPrompt = "Enter input now. Then enter " + ballot.GoCommand + " to compute results."
)

// Session is one console poll: choose a rule, enter ballots, print the winner.
type Session struct {
	In  io.Reader
	Out io.Writer
	// Interactive prints prompts before reading.
	Interactive bool
}

// Run reads ballots from s.In and writes the result to s.Out.
// method is a rule name or selector; when empty the selector is read as the
// first input line.
func (s *Session) Run(method string) error {
	in := bufio.NewReader(s.In)

	var m tally.Method
	if method == "" {
		s.prompt(selectorPrompt)
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read method: %w", err)
		}
		m = selectorMethod(line)
	} else {
		var err error
		m, err = tally.ParseMethod(method)
		if err != nil {
			return err
		}
	}

	s.prompt(ballotPrompt)
	ballots, err := ballot.ReadLines(in)
	if err != nil {
		return err
	}

	slog.Debug("ballots read", "method", m, "ballots", len(ballots))

	t := tally.New(m, ballots)
	if err := Print(s.Out, t); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.Out, Summary(t)); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// Print writes the winner line and the report of t.
func Print(w io.Writer, t tally.Tally) error {
	if _, err := fmt.Fprintf(w, "WINNER: %s\n%s\n", t.Winner(), t.Results()); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// Summary is the one-line description printed after the report.
func Summary(t tally.Tally) string {
	return fmt.Sprintf("%s: %s %s, %s %s",
		t.Method(),
		humanize.Comma(int64(t.BallotCount())), english.PluralWord(t.BallotCount(), "ballot", "ballots"),
		humanize.Comma(int64(len(t.Candidates()))), english.PluralWord(len(t.Candidates()), "candidate", "candidates"),
	)
}

func (s *Session) prompt(text string) {
	if s.Interactive {
		fmt.Fprintln(s.Out, text)
	}
}

// selectorMethod maps the selector line to a rule. Anything that is not an
// integer selects Plurality.
func selectorMethod(line string) tally.Method {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return tally.MethodPlurality
	}
	return tally.MethodFromSelector(n)
}
