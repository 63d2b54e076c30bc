package repository

import (
	"context"
	"fmt"

	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
	"github.com/agbanzy/apcconnctv2-sub002/internal/repository/dao"
)

var (
	ErrElectionNotFound   = dao.ErrElectionNotFound
	ErrElectionExists     = dao.ErrElectionExists
	ErrElectionNotVotable = dao.ErrElectionNotVotable
	ErrCandidateNotFound  = dao.ErrCandidateNotFound
	ErrCandidateHasVotes  = dao.ErrCandidateHasVotes
	ErrDuplicateVote      = dao.ErrDuplicateVote
	ErrStatusConflict     = dao.ErrStatusConflict
)

type ElectionDAO interface {
	Insert(ctx context.Context, election dao.Election) (dao.Election, error)
	FindByID(ctx context.Context, id uint) (dao.Election, error)
	List(ctx context.Context, position string, year int, status string) ([]dao.Election, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (dao.Election, error)
	UpdateIfStatus(ctx context.Context, id uint, status string, updates map[string]interface{}) (dao.Election, error)
	Delete(ctx context.Context, id uint) error
	InsertCandidate(ctx context.Context, candidate dao.Candidate) (dao.Candidate, error)
	FindCandidate(ctx context.Context, electionID, candidateID uint) (dao.Candidate, error)
	ListCandidates(ctx context.Context, electionID uint) ([]dao.Candidate, error)
	DeleteCandidate(ctx context.Context, electionID, candidateID uint) error
	InsertVote(ctx context.Context, vote dao.Vote) (dao.Vote, error)
}

type ElectionRepository struct {
	dao ElectionDAO
}

func NewElectionRepository(dao ElectionDAO) *ElectionRepository {
	return &ElectionRepository{
		dao: dao,
	}
}

func (r *ElectionRepository) domainToDao(e domain.Election) dao.Election {
	daoElection := dao.Election{
		ID:             e.ID,
		Position:       string(e.Position),
		ElectionYear:   e.ElectionYear,
		ElectionDate:   e.ElectionDate,
		Status:         string(e.Status),
		ScopeLevel:     string(e.Scope.Level),
		Title:          e.Title,
		Description:    e.Description,
		TotalVotesCast: e.TotalVotesCast,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}

	switch e.Scope.Level {
	case domain.LevelState:
		daoElection.StateID = e.Scope.UnitID
	case domain.LevelSenatorialDistrict:
		daoElection.SenatorialDistrictID = e.Scope.UnitID
	case domain.LevelLGA:
		daoElection.LgaID = e.Scope.UnitID
	case domain.LevelWard:
		daoElection.WardID = e.Scope.UnitID
	}

	return daoElection
}

func (r *ElectionRepository) daoToDomain(e dao.Election) domain.Election {
	scope := domain.Scope{Level: domain.ScopeLevel(e.ScopeLevel)}
	switch scope.Level {
	case domain.LevelState:
		scope.UnitID = e.StateID
	case domain.LevelSenatorialDistrict:
		scope.UnitID = e.SenatorialDistrictID
	case domain.LevelLGA:
		scope.UnitID = e.LgaID
	case domain.LevelWard:
		scope.UnitID = e.WardID
	}

	election := domain.Election{
		ID:             e.ID,
		Position:       domain.Position(e.Position),
		ElectionYear:   e.ElectionYear,
		ElectionDate:   e.ElectionDate,
		Status:         domain.ElectionStatus(e.Status),
		Scope:          scope,
		Title:          e.Title,
		Description:    e.Description,
		TotalVotesCast: e.TotalVotesCast,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}

	if len(e.Candidates) > 0 {
		election.Candidates = r.candidatesDaoToDomain(e.Candidates)
	}

	return election
}

func (r *ElectionRepository) candidateDomainToDao(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:          c.ID,
		ElectionID:  c.ElectionID,
		Name:        c.Name,
		PartyID:     c.PartyID,
		RunningMate: c.RunningMate,
		Votes:       c.Votes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *ElectionRepository) candidateDaoToDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:          c.ID,
		ElectionID:  c.ElectionID,
		Name:        c.Name,
		PartyID:     c.PartyID,
		RunningMate: c.RunningMate,
		Votes:       c.Votes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *ElectionRepository) candidatesDaoToDomain(candidates []dao.Candidate) []domain.Candidate {
	domainCandidates := make([]domain.Candidate, len(candidates))
	for i, c := range candidates {
		domainCandidates[i] = r.candidateDaoToDomain(c)
	}
	return domainCandidates
}

func (r *ElectionRepository) voteDaoToDomain(v dao.Vote) domain.Vote {
	return domain.Vote{
		ID:           v.ID,
		ElectionID:   v.ElectionID,
		CandidateID:  v.CandidateID,
		VoterID:      v.VoterID,
		IntegrityTag: v.IntegrityTag,
		CastAt:       v.CastAt,
	}
}

func (r *ElectionRepository) CreateElection(ctx context.Context, election domain.Election) (domain.Election, error) {
	// The scope columns are flattened from the sum type; a malformed
	// scope must never reach the unique index.
	if !election.Scope.IsValid() {
		return domain.Election{}, fmt.Errorf("invalid scope: level %q unit %d", election.Scope.Level, election.Scope.UnitID)
	}

	created, err := r.dao.Insert(ctx, r.domainToDao(election))
	if err != nil {
		if err == dao.ErrElectionExists {
			return domain.Election{}, ErrElectionExists
		}
		return domain.Election{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ElectionRepository) FindElectionByID(ctx context.Context, id uint) (domain.Election, error) {
	election, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if err == dao.ErrElectionNotFound {
			return domain.Election{}, ErrElectionNotFound
		}
		return domain.Election{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(election), nil
}

func (r *ElectionRepository) ListElections(ctx context.Context, filter domain.ElectionFilter) ([]domain.Election, error) {
	elections, err := r.dao.List(ctx, string(filter.Position), filter.Year, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	domainElections := make([]domain.Election, len(elections))
	for i, e := range elections {
		domainElections[i] = r.daoToDomain(e)
	}

	return domainElections, nil
}

func updateToMap(update domain.ElectionUpdate) map[string]interface{} {
	updates := map[string]interface{}{}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	return updates
}

func (r *ElectionRepository) UpdateElection(ctx context.Context, id uint, update domain.ElectionUpdate) (domain.Election, error) {
	updates := updateToMap(update)
	if len(updates) == 0 {
		return r.FindElectionByID(ctx, id)
	}

	updated, err := r.dao.Update(ctx, id, updates)
	if err != nil {
		if err == dao.ErrElectionNotFound {
			return domain.Election{}, ErrElectionNotFound
		}
		return domain.Election{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

// UpdateElectionStatus applies the update only while the election still
// holds the expected status, so a lifecycle check done before the write
// cannot be invalidated by a concurrent transition.
func (r *ElectionRepository) UpdateElectionStatus(ctx context.Context, id uint, expected domain.ElectionStatus, update domain.ElectionUpdate) (domain.Election, error) {
	updated, err := r.dao.UpdateIfStatus(ctx, id, string(expected), updateToMap(update))
	if err != nil {
		switch err {
		case dao.ErrElectionNotFound, dao.ErrStatusConflict:
			return domain.Election{}, err
		}
		return domain.Election{}, fmt.Errorf("r.dao.UpdateIfStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ElectionRepository) DeleteElection(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		if err == dao.ErrElectionNotFound {
			return ErrElectionNotFound
		}
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ElectionRepository) CreateCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	created, err := r.dao.InsertCandidate(ctx, r.candidateDomainToDao(candidate))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.InsertCandidate -> %w", err)
	}

	return r.candidateDaoToDomain(created), nil
}

func (r *ElectionRepository) FindCandidate(ctx context.Context, electionID, candidateID uint) (domain.Candidate, error) {
	candidate, err := r.dao.FindCandidate(ctx, electionID, candidateID)
	if err != nil {
		if err == dao.ErrCandidateNotFound {
			return domain.Candidate{}, ErrCandidateNotFound
		}
		return domain.Candidate{}, fmt.Errorf("r.dao.FindCandidate -> %w", err)
	}

	return r.candidateDaoToDomain(candidate), nil
}

func (r *ElectionRepository) ListCandidates(ctx context.Context, electionID uint) ([]domain.Candidate, error) {
	candidates, err := r.dao.ListCandidates(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCandidates -> %w", err)
	}

	return r.candidatesDaoToDomain(candidates), nil
}

func (r *ElectionRepository) DeleteCandidate(ctx context.Context, electionID, candidateID uint) error {
	if err := r.dao.DeleteCandidate(ctx, electionID, candidateID); err != nil {
		switch err {
		case dao.ErrCandidateNotFound, dao.ErrCandidateHasVotes:
			return err
		}
		return fmt.Errorf("r.dao.DeleteCandidate -> %w", err)
	}

	return nil
}

func (r *ElectionRepository) CastVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	created, err := r.dao.InsertVote(ctx, dao.Vote{
		ElectionID:   vote.ElectionID,
		VoterID:      vote.VoterID,
		CandidateID:  vote.CandidateID,
		IntegrityTag: vote.IntegrityTag,
		CastAt:       vote.CastAt,
	})
	if err != nil {
		switch err {
		case dao.ErrElectionNotFound, dao.ErrElectionNotVotable, dao.ErrCandidateNotFound, dao.ErrDuplicateVote:
			return domain.Vote{}, err
		}
		return domain.Vote{}, fmt.Errorf("r.dao.InsertVote -> %w", err)
	}

	return r.voteDaoToDomain(created), nil
}
