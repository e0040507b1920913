// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/ranked-pick/ballot"
)

// Method names a tallying rule.
type Method string

const (
	MethodPlurality Method = "plurality"
	MethodIRV       Method = "irv"
	MethodBorda     Method = "borda"
	MethodCondorcet Method = "condorcet"
)

// Tie is reported when no unique winner exists.
const Tie = "Tie"

// columnWidth pads candidate names in every text report.
const columnWidth = 18

var ErrUnknownMethod = errors.New("unknown tally method")

// Methods lists the supported rules, default first.
func Methods() []Method {
	return []Method{MethodPlurality, MethodIRV, MethodBorda, MethodCondorcet}
}

// MethodFromSelector maps the numeric menu choice to a rule:
// 1 IRV, 2 Borda, 3 Condorcet, anything else Plurality.
func MethodFromSelector(n int) Method {
	switch n {
	case 1:
		return MethodIRV
	case 2:
		return MethodBorda
	case 3:
		return MethodCondorcet
	default:
		return MethodPlurality
	}
}

// Selector returns the numeric menu choice for m. Plurality is 0.
func (m Method) Selector() int {
	switch m {
	case MethodIRV:
		return 1
	case MethodBorda:
		return 2
	case MethodCondorcet:
		return 3
	default:
		return 0
	}
}

// ParseMethod accepts a rule name or a numeric selector.
// An empty string selects Plurality.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return MethodFromSelector(n), nil
	}

	switch s {
	case "", "plurality", "fptp":
		return MethodPlurality, nil
	case "irv", "instant-runoff", "instant_runoff", "runoff":
		return MethodIRV, nil
	case "borda", "borda-count":
		return MethodBorda, nil
	case "condorcet":
		return MethodCondorcet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Standing is one candidate's place in a finished tally.
type Standing struct {
	Candidate string
	Votes     int
	Rank      int // 1-indexed
}

// Tally is a finished count under one rule. Counting happens when the
// tally is constructed; every method afterwards is a read.
type Tally interface {
	Method() Method
	// Winner returns the winning candidate or Tie.
	Winner() string
	// Results renders the per-rule text report.
	Results() string
	Candidates() []string
	BallotCount() int
	Standings() []Standing
}

// New counts ballots under rule m. The ballots are copied and never modified.
func New(m Method, ballots []*ballot.Ballot) Tally {
	switch m {
	case MethodIRV:
		return NewInstantRunoff(ballots)
	case MethodBorda:
		return NewBorda(ballots)
	case MethodCondorcet:
		return NewCondorcet(ballots)
	default:
		return NewPlurality(ballots)
	}
}

// base carries the state every rule shares: a private copy of the
// ballots and the per-candidate counts.
type base struct {
	ballots []*ballot.Ballot
	votes   *Votes
}

func newBase(ballots []*ballot.Ballot) *base {
	working := make([]*ballot.Ballot, 0, len(ballots))
	for _, b := range ballots {
		if b != nil {
			working = append(working, b.Clone())
		}
	}
	return &base{
		ballots: working,
		votes:   newVotes(discover(working)),
	}
}

// Winner applies the default rule: the leader wins unless another
// candidate has the same count or nobody has any votes.
func (b *base) Winner() string {
	leader := b.votes.leader()
	if leader == "" || b.votes.Get(leader) == 0 || b.votes.tied(leader) {
		return Tie
	}
	return leader
}

// Votes exposes the final count per candidate.
func (b *base) Votes() *Votes {
	return b.votes
}

func (b *base) Candidates() []string {
	return b.votes.Names()
}

func (b *base) BallotCount() int {
	return len(b.ballots)
}

func (b *base) Standings() []Standing {
	names := b.votes.sorted()
	out := make([]Standing, len(names))
	for i, n := range names {
		out[i] = Standing{Candidate: n, Votes: b.votes.Get(n), Rank: i + 1}
	}
	return out
}

// Results lists each candidate and its count, highest first.
func (b *base) Results() string {
	lines := make([]string, 0, b.votes.Len())
	for _, n := range b.votes.sorted() {
		lines = append(lines, fmt.Sprintf("%-*s %d", columnWidth, n+":", b.votes.Get(n)))
	}
	return strings.Join(lines, "\n")
}
