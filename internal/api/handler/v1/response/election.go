package response

import "github.com/agbanzy/apcconnctv2-sub002/internal/domain"

type CandidateResult struct {
	CandidateID uint   `json:"candidate_id"`
	Name        string `json:"name"`
	PartyID     uint   `json:"party_id"`
	RunningMate string `json:"running_mate,omitempty"`
	Votes       int    `json:"votes"`
}

// ResultsResponse is the ordered tally for one election.
type ResultsResponse struct {
	ElectionID     uint                  `json:"election_id"`
	Title          string                `json:"title"`
	Position       domain.Position       `json:"position"`
	Status         domain.ElectionStatus `json:"status"`
	TotalVotesCast int                   `json:"total_votes_cast"`
	Candidates     []CandidateResult     `json:"candidates"`
}

func NewResultsResponse(election domain.Election) ResultsResponse {
	candidates := make([]CandidateResult, len(election.Candidates))
	for i, c := range election.Candidates {
		candidates[i] = CandidateResult{
			CandidateID: c.ID,
			Name:        c.Name,
			PartyID:     c.PartyID,
			RunningMate: c.RunningMate,
			Votes:       c.Votes,
		}
	}

	return ResultsResponse{
		ElectionID:     election.ID,
		Title:          election.Title,
		Position:       election.Position,
		Status:         election.Status,
		TotalVotesCast: election.TotalVotesCast,
		Candidates:     candidates,
	}
}

type VoteResponse struct {
	ElectionID  uint   `json:"election_id"`
	CandidateID uint   `json:"candidate_id"`
	CastAt      string `json:"cast_at"`
	Message     string `json:"message"`
}
