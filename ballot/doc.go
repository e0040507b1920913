// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot holds ranked ballots and the line format used to enter them.

# Ballots

A Ballot is an ordered list of candidate names. Index 0 is the voter's first
choice. Names are unique within a ballot:

	b := ballot.New([]string{"A", "B", "A", "C"}) // A > B > C
	b.PositionOf("B")                             // 2
	b.Eliminate("A")                              // B > C

Queries never fail. CandidateAt returns "" and IndexOf returns -1 for
anything not on the ballot, and eliminating an absent candidate is a no-op.

# Line Format

Parse accepts names separated by one of , ; > or /:

	A, B, C
	A > B > C

ParseLine additionally accepts a repeat count before the first space:

	12 A > B > C   → 12 identical ballots
	Alice Bob/Carol → 1 ballot ("Alice Bob", "Carol")

The count must fit in 32 bits; a larger number stays part of the first name.

Expand and ReadLines turn lines into ballots. ReadLines stops at EOF or a
line holding only \go. Both fail with ErrTooManyBallots rather than expand
past MaxBallots.
*/
package ballot
