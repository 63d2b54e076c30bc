package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

var knownPositions = []interface{}{
	"presidential", "governorship", "senatorial", "house_of_reps",
	"state_assembly", "lga_chairman", "councillorship",
}

var knownStatuses = []interface{}{"upcoming", "ongoing", "completed", "cancelled"}

// SelectionRequest targets either every unit at the position's scope
// level or an explicit id list.
type SelectionRequest struct {
	All bool   `json:"all"`
	IDs []uint `json:"ids"`
}

type CreateElectionRequest struct {
	Position     string `json:"position" binding:"required"`
	ElectionYear int    `json:"election_year" binding:"required"`
	ElectionDate string `json:"election_date" binding:"required" format:"DD/MM/YYYY"`
	Status       string `json:"status"`
	ScopeID      uint   `json:"scope_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

func (req *CreateElectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Position, validation.Required, validation.In(knownPositions...)),
		validation.Field(&req.ElectionYear, validation.Required, validation.Min(1999)),
		validation.Field(&req.ElectionDate, validation.Required),
		validation.Field(&req.Status, validation.In(knownStatuses...)),
		validation.Field(&req.Title, validation.Length(0, 120)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type BulkGenerateRequest struct {
	Positions    []string                    `json:"positions" binding:"required"`
	ElectionYear int                         `json:"election_year" binding:"required"`
	ElectionDate string                      `json:"election_date" binding:"required" format:"DD/MM/YYYY"`
	Status       string                      `json:"status"`
	Selections   map[string]SelectionRequest `json:"selections"`
	Title        string                      `json:"title"`
	Description  string                      `json:"description"`
}

func (req *BulkGenerateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Positions, validation.Required, validation.Each(validation.In(knownPositions...))),
		validation.Field(&req.ElectionYear, validation.Required, validation.Min(1999)),
		validation.Field(&req.ElectionDate, validation.Required),
		validation.Field(&req.Status, validation.In(knownStatuses...)),
		validation.Field(&req.Title, validation.Length(0, 120)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type UpdateElectionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (req *UpdateElectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(1, 120)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Status, validation.In(knownStatuses...)),
	)
}

type BulkStatusRequest struct {
	ElectionIDs []uint `json:"election_ids" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

func (req *BulkStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ElectionIDs, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In(knownStatuses...)),
	)
}

type AddCandidateRequest struct {
	Name        string `json:"name" binding:"required"`
	PartyID     uint   `json:"party_id" binding:"required"`
	RunningMate string `json:"running_mate"`
}

func (req *AddCandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.PartyID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.RunningMate, validation.Length(0, 100)),
	)
}

type CastVoteRequest struct {
	CandidateID  uint   `json:"candidate_id" binding:"required"`
	IntegrityTag string `json:"integrity_tag"`
}

func (req *CastVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CandidateID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.IntegrityTag, validation.Length(0, 128)),
	)
}
