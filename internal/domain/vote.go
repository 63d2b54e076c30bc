package domain

import "time"

// Vote is one ballot: a voter choosing one candidate in one election.
// The (ElectionID, VoterID) pair is unique. IntegrityTag is an opaque
// value stored as-is; this core never interprets it.
type Vote struct {
	ID           uint      `json:"id"`
	ElectionID   uint      `json:"election_id"`
	CandidateID  uint      `json:"candidate_id"`
	VoterID      uint      `json:"voter_id"`
	IntegrityTag string    `json:"integrity_tag,omitempty"`
	CastAt       time.Time `json:"cast_at"`
}
