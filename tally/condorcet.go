// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/ranked-pick/ballot"
)

// Condorcet compares every pair of candidates. A candidate wins only by
// beating every other candidate on a strict majority of ballots.
//
// A ranked candidate is preferred to any candidate left off the same ballot.
// Equal counts never make a tie here: without an undefeated candidate the
// result is Tie, with one it is that candidate.
type Condorcet struct {
	*base
	// pairwise[a][b] is the number of ballots preferring a over b.
	pairwise map[string]map[string]int
}

func NewCondorcet(ballots []*ballot.Ballot) *Condorcet {
	c := &Condorcet{base: newBase(ballots)}

	c.pairwise = make(map[string]map[string]int, c.votes.Len())
	for _, a := range c.votes.names {
		c.pairwise[a] = make(map[string]int, c.votes.Len()-1)
		for _, b := range c.votes.names {
			if a != b {
				c.pairwise[a][b] = 0
			}
		}
	}

	c.accumulate()
	return c
}

func (c *Condorcet) Method() Method {
	return MethodCondorcet
}

func (c *Condorcet) accumulate() {
	for _, bal := range c.ballots {
		for _, a := range c.votes.names {
			ia := bal.IndexOf(a)
			if ia == -1 {
				continue
			}
			for _, b := range c.votes.names {
				if a == b {
					continue
				}
				if ib := bal.IndexOf(b); ib == -1 || ia < ib {
					c.pairwise[a][b]++
				}
			}
		}
	}

	// Standings rank candidates by the number of majority wins.
	for _, a := range c.votes.names {
		for _, b := range c.votes.names {
			if a != b && c.beats(a, b) {
				c.votes.add(a, 1)
			}
		}
	}
}

func (c *Condorcet) beats(a, b string) bool {
	return c.pairwise[a][b] > len(c.ballots)/2
}

// Pairwise returns the number of ballots preferring a over b.
func (c *Condorcet) Pairwise(a, b string) int {
	return c.pairwise[a][b]
}

// Matrix returns the pairwise counts indexed in candidate discovery order.
// The diagonal is zero.
func (c *Condorcet) Matrix() [][]int {
	names := c.votes.names
	m := make([][]int, len(names))
	for i, a := range names {
		m[i] = make([]int, len(names))
		for j, b := range names {
			if i != j {
				m[i][j] = c.pairwise[a][b]
			}
		}
	}
	return m
}

// CondorcetWinner returns the candidate that beats all others, or "" if none does.
func (c *Condorcet) CondorcetWinner() string {
	for _, a := range c.votes.names {
		undefeated := true
		for _, b := range c.votes.names {
			if a != b && !c.beats(a, b) {
				undefeated = false
				break
			}
		}
		if undefeated {
			return a
		}
	}
	return ""
}

func (c *Condorcet) Winner() string {
	if w := c.CondorcetWinner(); w != "" {
		return w
	}
	return Tie
}

// Results renders the pairwise table. Cell (row, col) is the number of
// ballots preferring row over col.
func (c *Condorcet) Results() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", columnWidth, " ")
	for _, n := range c.votes.names {
		fmt.Fprintf(&sb, "%-*s", columnWidth, n)
	}

	for _, row := range c.votes.names {
		fmt.Fprintf(&sb, "\n%-*s", columnWidth, row)
		for _, col := range c.votes.names {
			if row == col {
				fmt.Fprintf(&sb, "%-*s", columnWidth, "-")
			} else {
				fmt.Fprintf(&sb, "%-*d", columnWidth, c.pairwise[row][col])
			}
		}
	}
	return sb.String()
}
