// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/danielhkuo/ranked-pick/ballot"

// Borda scores positions. With n candidates in the election, rank 1 on a
// ballot earns n-1 points, rank 2 earns n-2, and so on down to 0.
// Candidates left off a ballot earn nothing from it.
type Borda struct {
	*base
}

func NewBorda(ballots []*ballot.Ballot) *Borda {
	b := &Borda{base: newBase(ballots)}
	b.accumulate()
	return b
}

func (b *Borda) Method() Method {
	return MethodBorda
}

func (b *Borda) accumulate() {
	n := b.votes.Len()
	for _, bal := range b.ballots {
		for _, c := range bal.Candidates() {
			b.votes.add(c, n-bal.PositionOf(c))
		}
	}
}
