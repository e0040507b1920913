// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally counts ranked ballots under four rules.

# Rules

  - Plurality: one vote for each ballot's first choice.
  - Borda: n-1 points for first place down to 0 for last.
  - InstantRunoff: drop the weakest first-choice candidate until one holds a majority.
  - Condorcet: the candidate beating every other one head-to-head by a majority.

# Usage

Counting happens at construction. The ballots passed in are copied, so the
caller's ballots are never modified:

	t := tally.New(tally.MethodIRV, ballots)
	fmt.Println("WINNER:", t.Winner())
	fmt.Println(t.Results())

Winner returns the literal "Tie" when no unique winner exists.

# Ordering

Candidates are kept in the order they first appear across the ballots.
Every tie-break (the leader search, the weakest IRV candidate, the order of
equal counts in a report) follows that order, so a given input always
produces the same output.

# Selectors

The numeric menu used by the console front-end maps through
MethodFromSelector: 1 IRV, 2 Borda, 3 Condorcet, anything else Plurality.
*/
package tally
