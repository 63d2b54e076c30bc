package domain

import "time"

type Candidate struct {
	ID          uint      `json:"id"`
	ElectionID  uint      `json:"election_id"`
	Name        string    `json:"name"`
	PartyID     uint      `json:"party_id"`
	RunningMate string    `json:"running_mate,omitempty"`
	Votes       int       `json:"votes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
