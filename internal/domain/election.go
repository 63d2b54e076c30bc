package domain

import "time"

type Position string

const (
	PositionPresidential  Position = "presidential"
	PositionGovernorship  Position = "governorship"
	PositionSenatorial    Position = "senatorial"
	PositionHouseOfReps   Position = "house_of_reps"
	PositionStateAssembly Position = "state_assembly"
	PositionLGAChairman   Position = "lga_chairman"
	PositionCouncillor    Position = "councillorship"
)

type ElectionStatus string

const (
	StatusUpcoming  ElectionStatus = "upcoming"
	StatusOngoing   ElectionStatus = "ongoing"
	StatusCompleted ElectionStatus = "completed"
	StatusCancelled ElectionStatus = "cancelled"
)

// HasRunningMate reports whether candidates for this position run on a
// joint ticket.
func (p Position) HasRunningMate() bool {
	return p == PositionPresidential || p == PositionGovernorship
}

func (p Position) IsValid() bool {
	_, ok := scopeLevels[p]
	return ok
}

func (s ElectionStatus) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions holds the permitted lifecycle edges. Completed and
// cancelled are terminal.
var transitions = map[ElectionStatus][]ElectionStatus{
	StatusUpcoming: {StatusOngoing, StatusCancelled},
	StatusOngoing:  {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to ElectionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Election struct {
	ID             uint           `json:"id"`
	Position       Position       `json:"position"`
	ElectionYear   int            `json:"election_year"`
	ElectionDate   time.Time      `json:"election_date"`
	Status         ElectionStatus `json:"status"`
	Scope          Scope          `json:"scope"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	TotalVotesCast int            `json:"total_votes_cast"`
	Candidates     []Candidate    `json:"candidates,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ElectionUpdate carries the mutable election fields; nil means leave
// unchanged.
type ElectionUpdate struct {
	Title       *string
	Description *string
	Status      *ElectionStatus
}

type ElectionFilter struct {
	Position Position
	Year     int
	Status   ElectionStatus
}
