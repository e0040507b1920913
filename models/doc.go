// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - TallyRequest: method, ballots (ballot lines)

# Response Types

  - TallyResponse: tally_id, method, winner, ballot_count, candidates,
    standings, rounds (IRV), pairwise (Condorcet), report
  - MethodsResponse: supported methods and their menu numbers
  - ErrorResponse: error, message

# Domain Types

  - Election: a stored set of ballot lines with a default method
  - Standing: a candidate's votes and rank
  - Round: one instant runoff round
*/
package models
