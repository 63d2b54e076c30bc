package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrElectionNotFound   = errors.New("election not found")
	ErrElectionExists     = errors.New("election already exists for this position, scope and year")
	ErrElectionNotVotable = errors.New("election is not open for voting")
	ErrCandidateNotFound  = errors.New("candidate not found in this election")
	ErrCandidateHasVotes  = errors.New("candidate already has votes cast")
	ErrDuplicateVote      = errors.New("voter has already cast a ballot in this election")
	ErrStatusConflict     = errors.New("election status changed by a concurrent update")
)

type Election struct {
	ID           uint      `gorm:"primaryKey"`
	Position     string    `gorm:"not null;uniqueIndex:idx_elections_position_scope_year"`
	ElectionYear int       `gorm:"not null;uniqueIndex:idx_elections_position_scope_year"`
	ElectionDate time.Time `gorm:"not null"`
	Status       string    `gorm:"not null;default:upcoming"`

	// Exactly one scope column is non-zero, except national elections
	// where all four are zero. Absent ids are stored as zero rather than
	// NULL so the uniqueness index compares them.
	ScopeLevel           string `gorm:"not null"`
	StateID              uint   `gorm:"not null;default:0;uniqueIndex:idx_elections_position_scope_year"`
	SenatorialDistrictID uint   `gorm:"not null;default:0;uniqueIndex:idx_elections_position_scope_year"`
	LgaID                uint   `gorm:"not null;default:0;uniqueIndex:idx_elections_position_scope_year"`
	WardID               uint   `gorm:"not null;default:0;uniqueIndex:idx_elections_position_scope_year"`

	Title          string `gorm:"not null"`
	Description    string
	TotalVotesCast int         `gorm:"not null;default:0"`
	Candidates     []Candidate `gorm:"foreignKey:ElectionID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Candidate struct {
	ID          uint   `gorm:"primaryKey"`
	ElectionID  uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	PartyID     uint   `gorm:"not null"`
	RunningMate string
	Votes       int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Vote struct {
	ID           uint `gorm:"primaryKey"`
	ElectionID   uint `gorm:"not null;uniqueIndex:idx_votes_election_voter"`
	VoterID      uint `gorm:"not null;uniqueIndex:idx_votes_election_voter"`
	CandidateID  uint `gorm:"not null;index"`
	IntegrityTag string
	CastAt       time.Time `gorm:"not null"`
}

type ElectionDAO struct {
	db *gorm.DB
}

func NewElectionDAO(db *gorm.DB) *ElectionDAO {
	return &ElectionDAO{
		db: db,
	}
}

func isUniqueViolation(err error, indexName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.ConstraintName, indexName)
}

func (d *ElectionDAO) Insert(ctx context.Context, election Election) (Election, error) {
	result := d.db.WithContext(ctx).Create(&election)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_elections_position_scope_year") {
			return Election{}, ErrElectionExists
		}

		return Election{}, result.Error
	}

	return election, nil
}

func (d *ElectionDAO) FindByID(ctx context.Context, id uint) (Election, error) {
	var election Election

	result := d.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("votes DESC, id ASC")
		}).
		First(&election, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Election{}, ErrElectionNotFound
		}

		return Election{}, result.Error
	}

	return election, nil
}

func (d *ElectionDAO) List(ctx context.Context, position string, year int, status string) ([]Election, error) {
	query := d.db.WithContext(ctx).Model(&Election{})
	if position != "" {
		query = query.Where("position = ?", position)
	}
	if year != 0 {
		query = query.Where("election_year = ?", year)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var elections []Election
	if err := query.Order("id").Find(&elections).Error; err != nil {
		return nil, err
	}

	return elections, nil
}

func (d *ElectionDAO) Update(ctx context.Context, id uint, updates map[string]interface{}) (Election, error) {
	result := d.db.WithContext(ctx).Model(&Election{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return Election{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Election{}, ErrElectionNotFound
	}

	return d.FindByID(ctx, id)
}

// UpdateIfStatus applies updates only while the election still holds
// the given status. The predicate is part of the UPDATE itself so two
// racing transition requests cannot both pass the lifecycle check;
// the loser sees ErrStatusConflict.
func (d *ElectionDAO) UpdateIfStatus(ctx context.Context, id uint, status string, updates map[string]interface{}) (Election, error) {
	result := d.db.WithContext(ctx).Model(&Election{}).
		Where("id = ? AND status = ?", id, status).
		Updates(updates)
	if result.Error != nil {
		return Election{}, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return Election{}, err
		}
		return Election{}, ErrStatusConflict
	}

	return d.FindByID(ctx, id)
}

// Delete removes an election together with its candidates and votes in
// one transaction.
func (d *ElectionDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("election_id = ?", id).Delete(&Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("election_id = ?", id).Delete(&Candidate{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Election{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrElectionNotFound
		}

		return nil
	})
}

func (d *ElectionDAO) InsertCandidate(ctx context.Context, candidate Candidate) (Candidate, error) {
	result := d.db.WithContext(ctx).Create(&candidate)
	if result.Error != nil {
		return Candidate{}, result.Error
	}

	return candidate, nil
}

func (d *ElectionDAO) FindCandidate(ctx context.Context, electionID, candidateID uint) (Candidate, error) {
	var candidate Candidate

	result := d.db.WithContext(ctx).
		First(&candidate, "id = ? AND election_id = ?", candidateID, electionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Candidate{}, ErrCandidateNotFound
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

// ListCandidates returns an election's candidates ordered by votes
// descending, ties broken by creation order.
func (d *ElectionDAO) ListCandidates(ctx context.Context, electionID uint) ([]Candidate, error) {
	var candidates []Candidate

	result := d.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("votes DESC, id ASC").
		Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

// DeleteCandidate removes a candidate only while its tally is zero. The
// votes = 0 guard is part of the DELETE itself so a concurrent ballot
// cannot slip in between check and delete.
func (d *ElectionDAO) DeleteCandidate(ctx context.Context, electionID, candidateID uint) error {
	if _, err := d.FindCandidate(ctx, electionID, candidateID); err != nil {
		return err
	}

	result := d.db.WithContext(ctx).
		Where("id = ? AND election_id = ? AND votes = 0", candidateID, electionID).
		Delete(&Candidate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateHasVotes
	}

	return nil
}

// InsertVote casts a ballot: it checks the election is ongoing and the
// candidate belongs to it, inserts the vote row and bumps both tallies,
// all inside one transaction. The unique index on (election_id,
// voter_id) makes concurrent double-voting lose cleanly.
func (d *ElectionDAO) InsertVote(ctx context.Context, vote Vote) (Vote, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var election Election
		if err := tx.First(&election, vote.ElectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrElectionNotFound
			}
			return err
		}
		if election.Status != "ongoing" {
			return ErrElectionNotVotable
		}

		var candidate Candidate
		if err := tx.First(&candidate, "id = ? AND election_id = ?", vote.CandidateID, vote.ElectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCandidateNotFound
			}
			return err
		}

		if err := tx.Create(&vote).Error; err != nil {
			if isUniqueViolation(err, "idx_votes_election_voter") {
				return ErrDuplicateVote
			}
			return err
		}

		if err := tx.Model(&Candidate{}).
			Where("id = ?", candidate.ID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&Election{}).
			Where("id = ?", election.ID).
			UpdateColumn("total_votes_cast", gorm.Expr("total_votes_cast + 1")).Error
	})
	if err != nil {
		return Vote{}, err
	}

	return vote, nil
}
