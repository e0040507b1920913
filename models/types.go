package models

// Request types

// Ballots are "[count ]ranking" lines, e.g. "3 A > B > C"
type TallyRequest struct {
	Method  string   `json:"method"`
	Ballots []string `json:"ballots"`
}

// Response types

type TallyResponse struct {
	TallyID     string     `json:"tally_id"`
	Method      string     `json:"method"`
	Winner      string     `json:"winner"`
	BallotCount int        `json:"ballot_count"`
	Candidates  []string   `json:"candidates"`
	Standings   []Standing `json:"standings"`
	Rounds      []Round    `json:"rounds,omitempty"`   // IRV only
	Pairwise    [][]int    `json:"pairwise,omitempty"` // Condorcet only, indexed like candidates
	Report      string     `json:"report"`
}

type MethodInfo struct {
	Method   string `json:"method"`
	Selector int    `json:"selector"`
}

type MethodsResponse struct {
	Methods []MethodInfo `json:"methods"`
}

// Domain types

type Election struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Method string `json:"method"`
}

type Standing struct {
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
	Rank      int    `json:"rank"` // 1-indexed ranking
}

type Round struct {
	Number     int    `json:"number"`
	Votes      []int  `json:"votes"` // indexed like candidates
	Eliminated string `json:"eliminated,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
