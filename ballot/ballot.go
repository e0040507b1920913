// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"slices"
	"strings"
)

// Separators are the characters accepted between candidate names in a ballot line.
// A single line is expected to use one of them consistently.
const Separators = ",;>/"

// Ballot is one voter's ranking. Index 0 is the most preferred candidate.
type Ballot struct {
	candidates []string
}

// New creates a ballot from candidates in order of preference.
// Repeated names are dropped; the first occurrence keeps its rank.
func New(candidates []string) *Ballot {
	b := &Ballot{candidates: make([]string, 0, len(candidates))}
	for _, c := range candidates {
		if !slices.Contains(b.candidates, c) {
			b.candidates = append(b.candidates, c)
		}
	}
	return b
}

// Parse creates a ballot from a delimited line such as "A, B, C" or "A > B > C".
// Names are trimmed, empty names are skipped and repeated names are dropped.
func Parse(text string) *Ballot {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(Separators, r)
	})

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			names = append(names, name)
		}
	}
	return New(names)
}

// CandidateAt returns the candidate at the zero-based index,
// or "" if index is out of range.
func (b *Ballot) CandidateAt(index int) string {
	if index < 0 || index >= len(b.candidates) {
		return ""
	}
	return b.candidates[index]
}

// Len returns the number of candidates still ranked on the ballot.
func (b *Ballot) Len() int {
	return len(b.candidates)
}

// IndexOf returns the zero-based rank of candidate, or -1 if absent.
func (b *Ballot) IndexOf(candidate string) int {
	return slices.Index(b.candidates, candidate)
}

// PositionOf returns the one-based rank of candidate, or 0 if absent.
func (b *Ballot) PositionOf(candidate string) int {
	return b.IndexOf(candidate) + 1
}

// Contains reports whether candidate is ranked on the ballot.
func (b *Ballot) Contains(candidate string) bool {
	return b.IndexOf(candidate) != -1
}

// Eliminate removes candidate and moves everyone ranked below up one place.
// Removing an absent candidate does nothing.
func (b *Ballot) Eliminate(candidate string) {
	b.EliminateAt(b.IndexOf(candidate))
}

// EliminateAt removes the candidate at the zero-based index.
// An out of range index does nothing.
func (b *Ballot) EliminateAt(index int) {
	if index < 0 || index >= len(b.candidates) {
		return
	}
	b.candidates = slices.Delete(b.candidates, index, index+1)
}

// Candidates returns a copy of the ranking in order of preference.
func (b *Ballot) Candidates() []string {
	return slices.Clone(b.candidates)
}

// Clone returns an independent copy of the ballot.
func (b *Ballot) Clone() *Ballot {
	return &Ballot{candidates: slices.Clone(b.candidates)}
}

// String renders the ballot as "A > B > C".
func (b *Ballot) String() string {
	return strings.Join(b.candidates, " > ")
}
