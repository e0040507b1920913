// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll runs a ranked-choice count on the console.

A Session reads from In and writes to Out:

	s := &poll.Session{In: os.Stdin, Out: os.Stdout, Interactive: true}
	err := s.Run("")

# Input

When Run is given no method, the first line is the rule selector:

	1      Instant runoff
	2      Borda count
	3      Condorcet
	other  Plurality (including anything that is not an integer)

Every following line is a ballot line, optionally prefixed by a repeat
count (see ballot.ParseLine). Input ends at a line reading \go or at EOF.

# Output

	WINNER: <candidate or Tie>
	<report>
	<method>: <n> ballots, <m> candidates

Prompts are printed only when Interactive is set.
*/
package poll
