// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"log/slog"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/danielhkuo/ranked-pick/ballot"
)

// Round is the record of one instant runoff round.
type Round struct {
	Number int
	// Votes holds first-choice counts in candidate discovery order.
	// Eliminated candidates count 0.
	Votes []int
	// Eliminated is the candidate dropped after this round, "" on the last round.
	Eliminated string
}

// InstantRunoff repeatedly counts first choices and drops the weakest
// candidate until someone holds a majority of all ballots.
//
// Counting stops when:
//   - the leader has more than half of the ballots,
//   - fewer than two candidates remain, or
//   - every remaining candidate has the same count (a tie no elimination can break).
//
// When only some of the trailing candidates are level, the one seen first
// on the ballots is eliminated.
type InstantRunoff struct {
	*base
	eliminated mapset.Set[string]
	rounds     []Round
}

func NewInstantRunoff(ballots []*ballot.Ballot) *InstantRunoff {
	r := &InstantRunoff{
		base:       newBase(ballots),
		eliminated: mapset.NewThreadUnsafeSet[string](),
	}
	r.runoff()
	return r
}

func (r *InstantRunoff) Method() Method {
	return MethodIRV
}

// Rounds returns the round-by-round record.
func (r *InstantRunoff) Rounds() []Round {
	out := make([]Round, len(r.rounds))
	for i, rd := range r.rounds {
		out[i] = Round{
			Number:     rd.Number,
			Votes:      append([]int(nil), rd.Votes...),
			Eliminated: rd.Eliminated,
		}
	}
	return out
}

// History returns candidate's count in every round.
func (r *InstantRunoff) History(candidate string) []int {
	idx := -1
	for i, n := range r.votes.names {
		if n == candidate {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	out := make([]int, len(r.rounds))
	for i, rd := range r.rounds {
		out[i] = rd.Votes[idx]
	}
	return out
}

// Eliminated returns the dropped candidates in the order they were dropped.
func (r *InstantRunoff) Eliminated() []string {
	var out []string
	for _, rd := range r.rounds {
		if rd.Eliminated != "" {
			out = append(out, rd.Eliminated)
		}
	}
	return out
}

func (r *InstantRunoff) runoff() {
	majority := len(r.ballots) / 2

	for {
		r.count()
		round := Round{Number: len(r.rounds) + 1, Votes: r.votes.Counts()}

		remaining := r.votes.Len() - r.eliminated.Cardinality()
		if r.votes.Get(r.votes.leader()) > majority || remaining < 2 || r.deadlocked() {
			r.rounds = append(r.rounds, round)
			return
		}

		lowest := r.lowest()
		r.eliminate(lowest)
		round.Eliminated = lowest
		r.rounds = append(r.rounds, round)

		slog.Debug("candidate eliminated",
			"round", round.Number,
			"candidate", lowest,
			"votes", r.votes.Get(lowest),
		)
	}
}

// count resets every candidate and awards one vote per ballot to its current
// first choice. Exhausted ballots count for nobody.
func (r *InstantRunoff) count() {
	r.votes.reset()
	for _, b := range r.ballots {
		r.votes.add(b.CandidateAt(0), 1)
	}
}

// deadlocked reports whether every remaining candidate has the same count.
func (r *InstantRunoff) deadlocked() bool {
	first := true
	count := 0
	for _, n := range r.votes.names {
		if r.eliminated.Contains(n) {
			continue
		}
		if first {
			count = r.votes.Get(n)
			first = false
			continue
		}
		if r.votes.Get(n) != count {
			return false
		}
	}
	return !first
}

// lowest returns the first remaining candidate with the fewest votes.
func (r *InstantRunoff) lowest() string {
	lowest := ""
	fewest := 0
	found := false
	for _, n := range r.votes.names {
		if r.eliminated.Contains(n) {
			continue
		}
		if !found || r.votes.Get(n) < fewest {
			lowest = n
			fewest = r.votes.Get(n)
			found = true
		}
	}
	return lowest
}

func (r *InstantRunoff) eliminate(candidate string) {
	for _, b := range r.ballots {
		b.Eliminate(candidate)
	}
	r.eliminated.Add(candidate)
}

// Results lists every candidate, including eliminated ones, followed by
// its count in each round. Candidates are ordered by the final round.
func (r *InstantRunoff) Results() string {
	lines := make([]string, 0, r.votes.Len())
	for _, n := range r.votes.sorted() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%-*s", columnWidth, n)
		for _, v := range r.History(n) {
			fmt.Fprintf(&sb, "\t%d", v)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
