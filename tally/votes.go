// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"slices"

	"github.com/danielhkuo/ranked-pick/ballot"
)

// Votes maps candidates to counts. Iteration follows the order in which
// candidates were first seen, which makes every tie-break reproducible.
type Votes struct {
	names  []string
	counts map[string]int
}

func newVotes(names []string) *Votes {
	v := &Votes{
		names:  slices.Clone(names),
		counts: make(map[string]int, len(names)),
	}
	for _, n := range names {
		v.counts[n] = 0
	}
	return v
}

// discover returns every distinct candidate on ballots, in order of first appearance.
func discover(ballots []*ballot.Ballot) []string {
	var names []string
	seen := make(map[string]bool)
	for _, b := range ballots {
		for _, c := range b.Candidates() {
			if !seen[c] {
				seen[c] = true
				names = append(names, c)
			}
		}
	}
	return names
}

// Get returns the count for name, 0 if unknown.
func (v *Votes) Get(name string) int {
	return v.counts[name]
}

// add ignores names outside the candidate universe.
func (v *Votes) add(name string, n int) {
	if _, ok := v.counts[name]; ok {
		v.counts[name] += n
	}
}

func (v *Votes) reset() {
	for n := range v.counts {
		v.counts[n] = 0
	}
}

// Has reports whether name belongs to the candidate universe.
func (v *Votes) Has(name string) bool {
	_, ok := v.counts[name]
	return ok
}

// Names returns the candidates in discovery order.
func (v *Votes) Names() []string {
	return slices.Clone(v.names)
}

// Len returns the number of candidates.
func (v *Votes) Len() int {
	return len(v.names)
}

// Counts returns the counts in discovery order.
func (v *Votes) Counts() []int {
	out := make([]int, len(v.names))
	for i, n := range v.names {
		out[i] = v.counts[n]
	}
	return out
}

// leader returns the first candidate with the strictly highest count.
// The first candidate seeds the search, so an all-zero tally still yields a name.
func (v *Votes) leader() string {
	winner := ""
	best := 0
	for i, n := range v.names {
		if i == 0 || v.counts[n] > best {
			winner = n
			best = v.counts[n]
		}
	}
	return winner
}

// tied reports whether any other candidate holds the same count as name.
func (v *Votes) tied(name string) bool {
	count := v.counts[name]
	for _, n := range v.names {
		if n != name && v.counts[n] == count {
			return true
		}
	}
	return false
}

// sorted returns the candidates by descending count, keeping discovery order among equals.
func (v *Votes) sorted() []string {
	names := slices.Clone(v.names)
	slices.SortStableFunc(names, func(a, b string) int {
		return v.counts[b] - v.counts[a]
	})
	return names
}
