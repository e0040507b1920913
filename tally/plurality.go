// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/danielhkuo/ranked-pick/ballot"

// Plurality awards one vote to each ballot's first choice.
type Plurality struct {
	*base
}

func NewPlurality(ballots []*ballot.Ballot) *Plurality {
	p := &Plurality{base: newBase(ballots)}
	p.accumulate()
	return p
}

func (p *Plurality) Method() Method {
	return MethodPlurality
}

func (p *Plurality) accumulate() {
	for _, b := range p.ballots {
		p.votes.add(b.CandidateAt(0), 1)
	}
}
