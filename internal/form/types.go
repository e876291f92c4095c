package form

import "jwt-builder/pkg/claimset"

// Claim is an additional claim row with a stable ID.
type Claim struct {
	ID        string
	ClaimType string
	Value     string
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	ID         string
	Standard   claimset.StandardClaims
	Additional []Claim
	Key        string
	KeyLength  int
	Algorithm  string
	Algorithms []string
	Base64     bool

	Claims   *claimset.ClaimSet
	Display  string
	Warnings []string

	CreatedJwt string
	// Pending counts submissions still waiting for a response.
	Pending int
	// Submissions counts every Submit call so far.
	Submissions uint64
}

// Stats describes the live sessions.
type Stats struct {
	ActiveSessions int
	MaxSessions    int
}
