// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ranked-pick/ballot"
)

func ballots(lines ...string) []*ballot.Ballot {
	bs, err := ballot.Expand(lines)
	if err != nil {
		panic(err)
	}
	return bs
}

func TestMethodFromSelector(t *testing.T) {
	assert.Equal(t, MethodIRV, MethodFromSelector(1))
	assert.Equal(t, MethodBorda, MethodFromSelector(2))
	assert.Equal(t, MethodCondorcet, MethodFromSelector(3))
	assert.Equal(t, MethodPlurality, MethodFromSelector(0))
	assert.Equal(t, MethodPlurality, MethodFromSelector(42))
	assert.Equal(t, MethodPlurality, MethodFromSelector(-1))

	for _, m := range Methods() {
		assert.Equal(t, m, MethodFromSelector(m.Selector()))
	}
}

func TestParseMethod(t *testing.T) {
	testCases := []struct {
		input    string
		expected Method
	}{
		{"", MethodPlurality},
		{"Plurality", MethodPlurality},
		{"1", MethodIRV},
		{" instant-runoff ", MethodIRV},
		{"2", MethodBorda},
		{"BORDA", MethodBorda},
		{"3", MethodCondorcet},
		{"condorcet", MethodCondorcet},
		{"9", MethodPlurality},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMethod(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}

	_, err := ParseMethod("approval")
	assert.True(t, errors.Is(err, ErrUnknownMethod))
}

func TestNewDispatchesOnMethod(t *testing.T) {
	bs := ballots("A,B")
	assert.IsType(t, &Plurality{}, New(MethodPlurality, bs))
	assert.IsType(t, &InstantRunoff{}, New(MethodIRV, bs))
	assert.IsType(t, &Borda{}, New(MethodBorda, bs))
	assert.IsType(t, &Condorcet{}, New(MethodCondorcet, bs))
	assert.IsType(t, &Plurality{}, New(Method("unknown"), bs))

	for _, m := range Methods() {
		assert.Equal(t, m, New(m, bs).Method())
	}
}

func TestTallyDoesNotModifyCallerBallots(t *testing.T) {
	bs := ballots("4 A,B,C", "3 B,C,A", "2 C,B,A")

	for _, m := range Methods() {
		New(m, bs)
		for _, b := range bs {
			assert.Equal(t, 3, b.Len(), "method %s", m)
		}
	}
}

func TestNilBallotsAreSkipped(t *testing.T) {
	bs := []*ballot.Ballot{nil, ballot.Parse("A,B"), nil}

	for _, m := range Methods() {
		tl := New(m, bs)
		assert.Equal(t, 1, tl.BallotCount())
		assert.Equal(t, "A", tl.Winner(), "method %s", m)
	}
}

func TestEmptyElectionIsTie(t *testing.T) {
	for _, m := range Methods() {
		tl := New(m, nil)
		assert.Equal(t, Tie, tl.Winner(), "method %s", m)
		assert.Empty(t, tl.Candidates())
		assert.Empty(t, tl.Standings())
	}
}

func TestPlurality(t *testing.T) {
	p := NewPlurality(ballots("A,B", "A,C", "B,A"))

	assert.Equal(t, "A", p.Winner())
	assert.Equal(t, 2, p.Votes().Get("A"))
	assert.Equal(t, 1, p.Votes().Get("B"))
	assert.Equal(t, 0, p.Votes().Get("C"))
	assert.Equal(t, []string{"A", "B", "C"}, p.Candidates())
}

func TestPluralityTie(t *testing.T) {
	p := NewPlurality(ballots("A,B", "B,A", "C"))
	assert.Equal(t, Tie, p.Winner())
}

func TestDefaultResults(t *testing.T) {
	p := NewPlurality(ballots("B", "2 C", "A", "B"))

	expected := fmt.Sprintf("%-18s %d\n%-18s %d\n%-18s %d", "B:", 2, "C:", 2, "A:", 1)
	assert.Equal(t, expected, p.Results())

	st := p.Standings()
	require.Len(t, st, 3)
	assert.Equal(t, Standing{Candidate: "B", Votes: 2, Rank: 1}, st[0])
	assert.Equal(t, Standing{Candidate: "C", Votes: 2, Rank: 2}, st[1])
	assert.Equal(t, Standing{Candidate: "A", Votes: 1, Rank: 3}, st[2])
}

func TestBorda(t *testing.T) {
	b := NewBorda(ballots("A,B,C", "B,C,A", "A,C,B"))

	assert.Equal(t, 4, b.Votes().Get("A"))
	assert.Equal(t, 3, b.Votes().Get("B"))
	assert.Equal(t, 2, b.Votes().Get("C"))
	assert.Equal(t, "A", b.Winner())
}

func TestBordaPointsPerFullBallot(t *testing.T) {
	for n := 1; n <= 6; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("C%d", i)
		}

		b := NewBorda([]*ballot.Ballot{ballot.New(names)})

		total := 0
		for _, c := range b.Votes().Counts() {
			total += c
		}
		assert.Equal(t, n*(n-1)/2, total, "n=%d", n)
	}
}

func TestBordaUnrankedEarnNothing(t *testing.T) {
	b := NewBorda(ballots("A", "B,C,A"))

	assert.Equal(t, 2, b.Votes().Get("A"))
	assert.Equal(t, 2, b.Votes().Get("B"))
	assert.Equal(t, 1, b.Votes().Get("C"))
	assert.Equal(t, Tie, b.Winner())
}

func TestBordaSingleCandidateHasNoVotes(t *testing.T) {
	b := NewBorda(ballots("3 A"))
	assert.Equal(t, 0, b.Votes().Get("A"))
	assert.Equal(t, Tie, b.Winner())
}
