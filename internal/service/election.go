package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
	"github.com/agbanzy/apcconnctv2-sub002/internal/repository"
)

var (
	ErrElectionNotFound  = repository.ErrElectionNotFound
	ErrElectionExists    = repository.ErrElectionExists
	ErrNotVotable        = repository.ErrElectionNotVotable
	ErrCandidateNotFound = repository.ErrCandidateNotFound
	ErrCandidateHasVotes = repository.ErrCandidateHasVotes
	ErrDuplicateVote     = repository.ErrDuplicateVote
	ErrStatusConflict    = repository.ErrStatusConflict
	ErrPartyNotFound     = repository.ErrPartyNotFound

	ErrUnknownPosition   = errors.New("unknown position")
	ErrInvalidStatus     = errors.New("unknown election status")
	ErrEmptySelection    = errors.New("selection is empty: set all or provide unit ids")
	ErrScopeRequired     = errors.New("position requires a scope unit id")
	ErrScopeUnitNotFound = errors.New("scope unit not found")
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrPartyInactive     = errors.New("party is not active")
)

type ElectionRepository interface {
	CreateElection(ctx context.Context, election domain.Election) (domain.Election, error)
	FindElectionByID(ctx context.Context, id uint) (domain.Election, error)
	ListElections(ctx context.Context, filter domain.ElectionFilter) ([]domain.Election, error)
	UpdateElection(ctx context.Context, id uint, update domain.ElectionUpdate) (domain.Election, error)
	UpdateElectionStatus(ctx context.Context, id uint, expected domain.ElectionStatus, update domain.ElectionUpdate) (domain.Election, error)
	DeleteElection(ctx context.Context, id uint) error
	CreateCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	ListCandidates(ctx context.Context, electionID uint) ([]domain.Candidate, error)
	DeleteCandidate(ctx context.Context, electionID, candidateID uint) error
	CastVote(ctx context.Context, vote domain.Vote) (domain.Vote, error)
}

type ScopeUnitFinder interface {
	ListUnits(ctx context.Context, level domain.ScopeLevel) ([]domain.ScopeUnit, error)
	FindUnits(ctx context.Context, level domain.ScopeLevel, ids []uint) ([]domain.ScopeUnit, error)
	FindPartyByID(ctx context.Context, id uint) (domain.Party, error)
}

type ElectionService struct {
	repo ElectionRepository
	geo  ScopeUnitFinder
}

func NewElectionService(repo ElectionRepository, geo ScopeUnitFinder) *ElectionService {
	return &ElectionService{
		repo: repo,
		geo:  geo,
	}
}

var positionTitles = map[domain.Position]string{
	domain.PositionPresidential:  "Presidential",
	domain.PositionGovernorship:  "Governorship",
	domain.PositionSenatorial:    "Senatorial",
	domain.PositionHouseOfReps:   "House of Representatives",
	domain.PositionStateAssembly: "State Assembly",
	domain.PositionLGAChairman:   "LGA Chairmanship",
	domain.PositionCouncillor:    "Councillorship",
}

func electionTitle(year int, position domain.Position, unitName string) string {
	if unitName == "" {
		return fmt.Sprintf("%d %s Election", year, positionTitles[position])
	}
	return fmt.Sprintf("%d %s Election - %s", year, positionTitles[position], unitName)
}

// ResolveScope expands a selection into the concrete scope units an
// election of this position must exist at. Unknown unit ids come back
// as per-unit errors; the known ids still resolve.
func (s *ElectionService) ResolveScope(ctx context.Context, position domain.Position, sel domain.Selection) ([]domain.ScopeUnit, []domain.UnitError, error) {
	level, ok := domain.ScopeLevelFor(position)
	if !ok {
		return nil, nil, ErrUnknownPosition
	}

	// Presidential elections have a single implicit national unit; any
	// supplied selection is ignored.
	if level == domain.LevelNational {
		return []domain.ScopeUnit{{Level: domain.LevelNational, Name: "National"}}, nil, nil
	}

	if sel.All {
		units, err := s.geo.ListUnits(ctx, level)
		if err != nil {
			return nil, nil, fmt.Errorf("s.geo.ListUnits -> %w", err)
		}
		return units, nil, nil
	}

	if len(sel.IDs) == 0 {
		return nil, nil, ErrEmptySelection
	}

	seen := make(map[uint]bool, len(sel.IDs))
	ids := make([]uint, 0, len(sel.IDs))
	for _, id := range sel.IDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	units, err := s.geo.FindUnits(ctx, level, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("s.geo.FindUnits -> %w", err)
	}

	found := make(map[uint]bool, len(units))
	for _, u := range units {
		found[u.ID] = true
	}

	var unitErrs []domain.UnitError
	for _, id := range ids {
		if !found[id] {
			unitErrs = append(unitErrs, domain.UnitError{
				Level:  level,
				UnitID: id,
				Reason: fmt.Sprintf("unknown %s id", level),
			})
		}
	}

	return units, unitErrs, nil
}

type BulkGenerateInput struct {
	Positions    []domain.Position
	ElectionYear int
	ElectionDate time.Time
	Status       domain.ElectionStatus
	Selections   map[domain.Position]domain.Selection
	Title        string
	Description  string
}

// BulkGenerate creates one election per resolved scope unit. Units that
// already have an election for the position and year are skipped, and a
// failing unit never aborts the rest: each requested unit ends up
// counted exactly once, as created, skipped or errored.
func (s *ElectionService) BulkGenerate(ctx context.Context, input BulkGenerateInput) (domain.BulkOutcome, error) {
	if len(input.Positions) == 0 {
		return domain.BulkOutcome{}, ErrUnknownPosition
	}
	for _, position := range input.Positions {
		if !position.IsValid() {
			return domain.BulkOutcome{}, ErrUnknownPosition
		}
	}

	status := input.Status
	if status == "" {
		status = domain.StatusUpcoming
	}
	if !status.IsValid() {
		return domain.BulkOutcome{}, ErrInvalidStatus
	}

	outcome := domain.BulkOutcome{Errors: []domain.UnitError{}}

	for _, position := range input.Positions {
		units, unitErrs, err := s.ResolveScope(ctx, position, input.Selections[position])
		if err != nil {
			return domain.BulkOutcome{}, err
		}
		outcome.Errors = append(outcome.Errors, unitErrs...)

		for _, unit := range units {
			title := input.Title
			if title == "" {
				title = electionTitle(input.ElectionYear, position, unit.Name)
			}

			election := domain.Election{
				Position:     position,
				ElectionYear: input.ElectionYear,
				ElectionDate: input.ElectionDate,
				Status:       status,
				Scope:        unit.Scope(),
				Title:        title,
				Description:  input.Description,
			}

			_, err := s.repo.CreateElection(ctx, election)
			switch {
			case err == nil:
				outcome.Created++
			case errors.Is(err, ErrElectionExists):
				outcome.Skipped++
			default:
				outcome.Errors = append(outcome.Errors, domain.UnitError{
					Level:  unit.Level,
					UnitID: unit.ID,
					Reason: err.Error(),
				})
			}
		}
	}

	zap.L().Info("bulk election generation finished",
		zap.Int("created", outcome.Created),
		zap.Int("skipped", outcome.Skipped),
		zap.Int("errors", len(outcome.Errors)),
		zap.Int("year", input.ElectionYear),
	)

	return outcome, nil
}

type CreateElectionInput struct {
	Position     domain.Position
	ElectionYear int
	ElectionDate time.Time
	Status       domain.ElectionStatus
	ScopeID      uint
	Title        string
	Description  string
}

func (s *ElectionService) CreateElection(ctx context.Context, input CreateElectionInput) (domain.Election, error) {
	level, ok := domain.ScopeLevelFor(input.Position)
	if !ok {
		return domain.Election{}, ErrUnknownPosition
	}

	status := input.Status
	if status == "" {
		status = domain.StatusUpcoming
	}
	if !status.IsValid() {
		return domain.Election{}, ErrInvalidStatus
	}

	scope := domain.NationalScope()
	unitName := ""
	if level != domain.LevelNational {
		if input.ScopeID == 0 {
			return domain.Election{}, ErrScopeRequired
		}

		units, err := s.geo.FindUnits(ctx, level, []uint{input.ScopeID})
		if err != nil {
			return domain.Election{}, fmt.Errorf("s.geo.FindUnits -> %w", err)
		}
		if len(units) == 0 {
			return domain.Election{}, ErrScopeUnitNotFound
		}

		scope = units[0].Scope()
		unitName = units[0].Name
	}

	title := input.Title
	if title == "" {
		title = electionTitle(input.ElectionYear, input.Position, unitName)
	}

	created, err := s.repo.CreateElection(ctx, domain.Election{
		Position:     input.Position,
		ElectionYear: input.ElectionYear,
		ElectionDate: input.ElectionDate,
		Status:       status,
		Scope:        scope,
		Title:        title,
		Description:  input.Description,
	})
	if err != nil {
		if errors.Is(err, ErrElectionExists) {
			return domain.Election{}, ErrElectionExists
		}
		return domain.Election{}, fmt.Errorf("s.repo.CreateElection -> %w", err)
	}

	return created, nil
}

func (s *ElectionService) GetElection(ctx context.Context, id uint) (domain.Election, error) {
	election, err := s.repo.FindElectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrElectionNotFound) {
			return domain.Election{}, ErrElectionNotFound
		}
		return domain.Election{}, fmt.Errorf("s.repo.FindElectionByID -> %w", err)
	}

	return election, nil
}

func (s *ElectionService) ListElections(ctx context.Context, filter domain.ElectionFilter) ([]domain.Election, error) {
	elections, err := s.repo.ListElections(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListElections -> %w", err)
	}

	return elections, nil
}

// UpdateElection applies field updates; a status change must be one of
// the permitted lifecycle edges. The write carries the status the check
// was made against, so a concurrent transition cannot slip a forbidden
// edge through between the read and the update.
func (s *ElectionService) UpdateElection(ctx context.Context, id uint, update domain.ElectionUpdate) (domain.Election, error) {
	if update.Status != nil {
		if !update.Status.IsValid() {
			return domain.Election{}, ErrInvalidStatus
		}

		current, err := s.GetElection(ctx, id)
		if err != nil {
			return domain.Election{}, err
		}
		if !domain.CanTransition(current.Status, *update.Status) {
			return domain.Election{}, ErrInvalidTransition
		}

		updated, err := s.repo.UpdateElectionStatus(ctx, id, current.Status, update)
		if err != nil {
			switch {
			case errors.Is(err, ErrElectionNotFound):
				return domain.Election{}, ErrElectionNotFound
			case errors.Is(err, ErrStatusConflict):
				return domain.Election{}, ErrInvalidTransition
			}
			return domain.Election{}, fmt.Errorf("s.repo.UpdateElectionStatus -> %w", err)
		}
		return updated, nil
	}

	updated, err := s.repo.UpdateElection(ctx, id, update)
	if err != nil {
		if errors.Is(err, ErrElectionNotFound) {
			return domain.Election{}, ErrElectionNotFound
		}
		return domain.Election{}, fmt.Errorf("s.repo.UpdateElection -> %w", err)
	}

	return updated, nil
}

// BulkSetStatus applies the same transition check per election and
// reports a per-id outcome instead of failing the whole batch.
func (s *ElectionService) BulkSetStatus(ctx context.Context, ids []uint, status domain.ElectionStatus) (domain.BulkStatusOutcome, error) {
	if !status.IsValid() {
		return domain.BulkStatusOutcome{}, ErrInvalidStatus
	}

	outcome := domain.BulkStatusOutcome{Outcomes: make([]domain.StatusOutcome, 0, len(ids))}

	for _, id := range ids {
		current, err := s.repo.FindElectionByID(ctx, id)
		if err != nil {
			reason := "election not found"
			if !errors.Is(err, ErrElectionNotFound) {
				reason = err.Error()
			}
			outcome.Failed++
			outcome.Outcomes = append(outcome.Outcomes, domain.StatusOutcome{ElectionID: id, Reason: reason})
			continue
		}

		if !domain.CanTransition(current.Status, status) {
			outcome.Failed++
			outcome.Outcomes = append(outcome.Outcomes, domain.StatusOutcome{
				ElectionID: id,
				Reason:     fmt.Sprintf("cannot transition from %s to %s", current.Status, status),
			})
			continue
		}

		if _, err := s.repo.UpdateElectionStatus(ctx, id, current.Status, domain.ElectionUpdate{Status: &status}); err != nil {
			reason := err.Error()
			if errors.Is(err, ErrStatusConflict) {
				reason = "status changed concurrently"
			}
			outcome.Failed++
			outcome.Outcomes = append(outcome.Outcomes, domain.StatusOutcome{ElectionID: id, Reason: reason})
			continue
		}

		outcome.Updated++
		outcome.Outcomes = append(outcome.Outcomes, domain.StatusOutcome{ElectionID: id, Updated: true})
	}

	return outcome, nil
}

// DeleteElection removes the election and cascades to its candidates
// and votes. Irreversible; the boundary is responsible for any
// confirmation step.
func (s *ElectionService) DeleteElection(ctx context.Context, id uint) error {
	if err := s.repo.DeleteElection(ctx, id); err != nil {
		if errors.Is(err, ErrElectionNotFound) {
			return ErrElectionNotFound
		}
		return fmt.Errorf("s.repo.DeleteElection -> %w", err)
	}

	return nil
}

type AddCandidateInput struct {
	Name        string
	PartyID     uint
	RunningMate string
}

// AddCandidate registers a candidate on an election. The party must
// exist and be active. A running mate is stored only for positions with
// a joint ticket; for any other position it is dropped, not rejected.
func (s *ElectionService) AddCandidate(ctx context.Context, electionID uint, input AddCandidateInput) (domain.Candidate, error) {
	election, err := s.GetElection(ctx, electionID)
	if err != nil {
		return domain.Candidate{}, err
	}

	party, err := s.geo.FindPartyByID(ctx, input.PartyID)
	if err != nil {
		if errors.Is(err, ErrPartyNotFound) {
			return domain.Candidate{}, ErrPartyNotFound
		}
		return domain.Candidate{}, fmt.Errorf("s.geo.FindPartyByID -> %w", err)
	}
	if !party.IsActive {
		return domain.Candidate{}, ErrPartyInactive
	}

	runningMate := input.RunningMate
	if !election.Position.HasRunningMate() {
		runningMate = ""
	}

	created, err := s.repo.CreateCandidate(ctx, domain.Candidate{
		ElectionID:  electionID,
		Name:        input.Name,
		PartyID:     input.PartyID,
		RunningMate: runningMate,
	})
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.CreateCandidate -> %w", err)
	}

	return created, nil
}

func (s *ElectionService) ListCandidates(ctx context.Context, electionID uint) ([]domain.Candidate, error) {
	if _, err := s.GetElection(ctx, electionID); err != nil {
		return nil, err
	}

	candidates, err := s.repo.ListCandidates(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCandidates -> %w", err)
	}

	return candidates, nil
}

// RemoveCandidate refuses to delete a candidate that already has votes;
// historical tallies only disappear through full election deletion.
func (s *ElectionService) RemoveCandidate(ctx context.Context, electionID, candidateID uint) error {
	if err := s.repo.DeleteCandidate(ctx, electionID, candidateID); err != nil {
		switch {
		case errors.Is(err, ErrCandidateNotFound), errors.Is(err, ErrCandidateHasVotes):
			return err
		}
		return fmt.Errorf("s.repo.DeleteCandidate -> %w", err)
	}

	return nil
}

// CastVote records a ballot for (election, candidate, voter). The
// storage layer applies the vote insert and both tally increments as
// one atomic unit; concurrent duplicates surface as ErrDuplicateVote.
func (s *ElectionService) CastVote(ctx context.Context, electionID, candidateID, voterID uint, integrityTag string) (domain.Vote, error) {
	vote := domain.Vote{
		ElectionID:   electionID,
		CandidateID:  candidateID,
		VoterID:      voterID,
		IntegrityTag: integrityTag,
		CastAt:       time.Now(),
	}

	cast, err := s.repo.CastVote(ctx, vote)
	if err != nil {
		switch {
		case errors.Is(err, ErrElectionNotFound),
			errors.Is(err, ErrNotVotable),
			errors.Is(err, ErrCandidateNotFound),
			errors.Is(err, ErrDuplicateVote):
			return domain.Vote{}, err
		}
		return domain.Vote{}, fmt.Errorf("s.repo.CastVote -> %w", err)
	}

	return cast, nil
}

// GetResults returns the election with candidates ordered by descending
// votes; ties break on candidate creation order so repeated reads of an
// unchanged ledger are stable.
func (s *ElectionService) GetResults(ctx context.Context, electionID uint) (domain.Election, error) {
	election, err := s.GetElection(ctx, electionID)
	if err != nil {
		return domain.Election{}, err
	}

	if election.Candidates == nil {
		candidates, err := s.repo.ListCandidates(ctx, electionID)
		if err != nil {
			return domain.Election{}, fmt.Errorf("s.repo.ListCandidates -> %w", err)
		}
		election.Candidates = candidates
	}

	return election, nil
}
