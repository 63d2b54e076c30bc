package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
	"github.com/agbanzy/apcconnctv2-sub002/internal/service"
)

// fakeGeo serves fixed reference data in place of the geography tables.
type fakeGeo struct {
	units   map[domain.ScopeLevel][]domain.ScopeUnit
	parties map[uint]domain.Party
}

func newFakeGeo() *fakeGeo {
	return &fakeGeo{
		units:   make(map[domain.ScopeLevel][]domain.ScopeUnit),
		parties: make(map[uint]domain.Party),
	}
}

func (g *fakeGeo) addUnit(level domain.ScopeLevel, id uint, name string) {
	g.units[level] = append(g.units[level], domain.ScopeUnit{Level: level, ID: id, Name: name})
}

func (g *fakeGeo) ListUnits(_ context.Context, level domain.ScopeLevel) ([]domain.ScopeUnit, error) {
	return g.units[level], nil
}

func (g *fakeGeo) FindUnits(_ context.Context, level domain.ScopeLevel, ids []uint) ([]domain.ScopeUnit, error) {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var found []domain.ScopeUnit
	for _, u := range g.units[level] {
		if wanted[u.ID] {
			found = append(found, u)
		}
	}
	return found, nil
}

func (g *fakeGeo) FindPartyByID(_ context.Context, id uint) (domain.Party, error) {
	party, ok := g.parties[id]
	if !ok {
		return domain.Party{}, service.ErrPartyNotFound
	}
	return party, nil
}

// fakeElectionRepo is an in-memory stand-in that enforces the same
// uniqueness rules as the real storage: one election per
// (position, year, scope) and one vote per (election, voter). All
// methods are safe for concurrent use so voting races can be tested.
type fakeElectionRepo struct {
	mu sync.Mutex

	nextElectionID  uint
	nextCandidateID uint
	elections       map[uint]domain.Election
	candidates      map[uint]domain.Candidate
	votes           map[string]bool

	// failOnScopeID makes CreateElection fail for one unit, to exercise
	// partial-batch behavior.
	failOnScopeID uint

	// beforeStatusUpdate runs before UpdateElectionStatus takes the
	// lock, to interleave a competing transition.
	beforeStatusUpdate func()
}

func newFakeElectionRepo() *fakeElectionRepo {
	return &fakeElectionRepo{
		elections:  make(map[uint]domain.Election),
		candidates: make(map[uint]domain.Candidate),
		votes:      make(map[string]bool),
	}
}

func electionKey(e domain.Election) string {
	return fmt.Sprintf("%s|%d|%s|%d", e.Position, e.ElectionYear, e.Scope.Level, e.Scope.UnitID)
}

func (r *fakeElectionRepo) CreateElection(_ context.Context, election domain.Election) (domain.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failOnScopeID != 0 && election.Scope.UnitID == r.failOnScopeID {
		return domain.Election{}, errors.New("connection reset by peer")
	}

	key := electionKey(election)
	for _, existing := range r.elections {
		if electionKey(existing) == key {
			return domain.Election{}, service.ErrElectionExists
		}
	}

	r.nextElectionID++
	election.ID = r.nextElectionID
	r.elections[election.ID] = election
	return election, nil
}

func (r *fakeElectionRepo) FindElectionByID(_ context.Context, id uint) (domain.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(id)
}

func (r *fakeElectionRepo) findLocked(id uint) (domain.Election, error) {
	election, ok := r.elections[id]
	if !ok {
		return domain.Election{}, service.ErrElectionNotFound
	}
	election.Candidates = r.candidatesLocked(id)
	return election, nil
}

// candidatesLocked returns candidates ordered by descending votes, ties
// on insertion order, matching the storage layer's ordering.
func (r *fakeElectionRepo) candidatesLocked(electionID uint) []domain.Candidate {
	var result []domain.Candidate
	for _, c := range r.candidates {
		if c.ElectionID == electionID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Votes != result[j].Votes {
			return result[i].Votes > result[j].Votes
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (r *fakeElectionRepo) ListElections(_ context.Context, filter domain.ElectionFilter) ([]domain.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Election
	for _, e := range r.elections {
		if filter.Position != "" && e.Position != filter.Position {
			continue
		}
		if filter.Year != 0 && e.ElectionYear != filter.Year {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeElectionRepo) UpdateElection(_ context.Context, id uint, update domain.ElectionUpdate) (domain.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	election, ok := r.elections[id]
	if !ok {
		return domain.Election{}, service.ErrElectionNotFound
	}
	if update.Title != nil {
		election.Title = *update.Title
	}
	if update.Description != nil {
		election.Description = *update.Description
	}
	if update.Status != nil {
		election.Status = *update.Status
	}
	r.elections[id] = election
	return election, nil
}

func (r *fakeElectionRepo) UpdateElectionStatus(_ context.Context, id uint, expected domain.ElectionStatus, update domain.ElectionUpdate) (domain.Election, error) {
	if r.beforeStatusUpdate != nil {
		r.beforeStatusUpdate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	election, ok := r.elections[id]
	if !ok {
		return domain.Election{}, service.ErrElectionNotFound
	}
	if election.Status != expected {
		return domain.Election{}, service.ErrStatusConflict
	}
	if update.Title != nil {
		election.Title = *update.Title
	}
	if update.Description != nil {
		election.Description = *update.Description
	}
	if update.Status != nil {
		election.Status = *update.Status
	}
	r.elections[id] = election
	return election, nil
}

func (r *fakeElectionRepo) DeleteElection(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.elections[id]; !ok {
		return service.ErrElectionNotFound
	}
	delete(r.elections, id)
	for cid, c := range r.candidates {
		if c.ElectionID == id {
			delete(r.candidates, cid)
		}
	}
	prefix := fmt.Sprintf("%d:", id)
	for key := range r.votes {
		if strings.HasPrefix(key, prefix) {
			delete(r.votes, key)
		}
	}
	return nil
}

func (r *fakeElectionRepo) CreateCandidate(_ context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextCandidateID++
	candidate.ID = r.nextCandidateID
	r.candidates[candidate.ID] = candidate
	return candidate, nil
}

func (r *fakeElectionRepo) ListCandidates(_ context.Context, electionID uint) ([]domain.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.candidatesLocked(electionID), nil
}

func (r *fakeElectionRepo) DeleteCandidate(_ context.Context, electionID, candidateID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate, ok := r.candidates[candidateID]
	if !ok || candidate.ElectionID != electionID {
		return service.ErrCandidateNotFound
	}
	if candidate.Votes > 0 {
		return service.ErrCandidateHasVotes
	}
	delete(r.candidates, candidateID)
	return nil
}

func (r *fakeElectionRepo) CastVote(_ context.Context, vote domain.Vote) (domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	election, ok := r.elections[vote.ElectionID]
	if !ok {
		return domain.Vote{}, service.ErrElectionNotFound
	}
	if election.Status != domain.StatusOngoing {
		return domain.Vote{}, service.ErrNotVotable
	}

	candidate, ok := r.candidates[vote.CandidateID]
	if !ok || candidate.ElectionID != vote.ElectionID {
		return domain.Vote{}, service.ErrCandidateNotFound
	}

	key := fmt.Sprintf("%d:%d", vote.ElectionID, vote.VoterID)
	if r.votes[key] {
		return domain.Vote{}, service.ErrDuplicateVote
	}
	r.votes[key] = true

	candidate.Votes++
	r.candidates[candidate.ID] = candidate
	election.TotalVotesCast++
	r.elections[election.ID] = election

	return vote, nil
}

func newTestService() (*service.ElectionService, *fakeElectionRepo, *fakeGeo) {
	repo := newFakeElectionRepo()
	geo := newFakeGeo()

	for i := 1; i <= 37; i++ {
		geo.addUnit(domain.LevelState, uint(i), fmt.Sprintf("State %02d", i))
	}
	geo.addUnit(domain.LevelSenatorialDistrict, 101, "Lagos Central")
	geo.addUnit(domain.LevelSenatorialDistrict, 102, "Lagos East")
	geo.addUnit(domain.LevelSenatorialDistrict, 103, "Lagos West")
	geo.addUnit(domain.LevelLGA, 501, "Ikeja")
	geo.addUnit(domain.LevelLGA, 502, "Surulere")
	geo.addUnit(domain.LevelWard, 9001, "Ikeja Ward A")

	geo.parties[1] = domain.Party{ID: 1, Name: "All Progressives Congress", Acronym: "APC", IsActive: true}
	geo.parties[2] = domain.Party{ID: 2, Name: "Peoples Democratic Party", Acronym: "PDP", IsActive: true}
	geo.parties[3] = domain.Party{ID: 3, Name: "Defunct Alliance", Acronym: "DA", IsActive: false}

	return service.NewElectionService(repo, geo), repo, geo
}

func TestBulkGenerate_AllStatesIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	input := service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionGovernorship},
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Selections: map[domain.Position]domain.Selection{
			domain.PositionGovernorship: {All: true},
		},
	}

	outcome, err := svc.BulkGenerate(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 37, outcome.Created)
	assert.Equal(t, 0, outcome.Skipped)
	assert.Empty(t, outcome.Errors)

	// Re-running the identical request must not duplicate anything.
	outcome, err = svc.BulkGenerate(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Created)
	assert.Equal(t, 37, outcome.Skipped)
	assert.Empty(t, outcome.Errors)

	elections, err := svc.ListElections(ctx, domain.ElectionFilter{Position: domain.PositionGovernorship, Year: 2027})
	require.NoError(t, err)
	assert.Len(t, elections, 37)
}

func TestBulkGenerate_UnknownUnitIDs(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	outcome, err := svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionGovernorship},
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Selections: map[domain.Position]domain.Selection{
			// 24 repeated, 999 unknown.
			domain.PositionGovernorship: {IDs: []uint{24, 999, 24}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Created)
	assert.Equal(t, 0, outcome.Skipped)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, uint(999), outcome.Errors[0].UnitID)
	assert.Equal(t, domain.LevelState, outcome.Errors[0].Level)
	assert.Equal(t, "unknown state id", outcome.Errors[0].Reason)

	// Every distinct requested unit is accounted for exactly once.
	assert.Equal(t, 2, outcome.Created+outcome.Skipped+len(outcome.Errors))
}

func TestBulkGenerate_PresidentialIgnoresSelection(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	outcome, err := svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionPresidential},
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 2, 25, 0, 0, 0, 0, time.UTC),
		Selections: map[domain.Position]domain.Selection{
			domain.PositionPresidential: {IDs: []uint{1, 2, 3}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Created)
	assert.Empty(t, outcome.Errors)

	elections, err := svc.ListElections(ctx, domain.ElectionFilter{Position: domain.PositionPresidential})
	require.NoError(t, err)
	require.Len(t, elections, 1)
	assert.Equal(t, domain.NationalScope(), elections[0].Scope)
	assert.Equal(t, "2027 Presidential Election - National", elections[0].Title)
	assert.Equal(t, domain.StatusUpcoming, elections[0].Status)
}

func TestBulkGenerate_MultiplePositions(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	outcome, err := svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionGovernorship, domain.PositionSenatorial},
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Selections: map[domain.Position]domain.Selection{
			domain.PositionGovernorship: {IDs: []uint{24}},
			domain.PositionSenatorial:   {All: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, outcome.Created)
	assert.Empty(t, outcome.Errors)
}

func TestBulkGenerate_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.BulkGenerate(ctx, service.BulkGenerateInput{
		ElectionYear: 2027,
	})
	assert.ErrorIs(t, err, service.ErrUnknownPosition)

	_, err = svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{"mayor"},
		ElectionYear: 2027,
	})
	assert.ErrorIs(t, err, service.ErrUnknownPosition)

	_, err = svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionGovernorship},
		ElectionYear: 2027,
		Status:       "paused",
		Selections: map[domain.Position]domain.Selection{
			domain.PositionGovernorship: {All: true},
		},
	})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	// Neither all nor ids.
	_, err = svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionGovernorship},
		ElectionYear: 2027,
	})
	assert.ErrorIs(t, err, service.ErrEmptySelection)
}

func TestBulkGenerate_FailingUnitDoesNotAbortBatch(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.failOnScopeID = 5
	ctx := context.Background()

	outcome, err := svc.BulkGenerate(ctx, service.BulkGenerateInput{
		Positions:    []domain.Position{domain.PositionGovernorship},
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Selections: map[domain.Position]domain.Selection{
			domain.PositionGovernorship: {All: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 36, outcome.Created)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, uint(5), outcome.Errors[0].UnitID)
	assert.Equal(t, 37, outcome.Created+outcome.Skipped+len(outcome.Errors))
}

func TestCreateElection(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateElection(ctx, service.CreateElectionInput{
		Position:     domain.PositionGovernorship,
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		ScopeID:      24,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusUpcoming, created.Status, "status defaults to upcoming")
	assert.Equal(t, "2027 Governorship Election - State 24", created.Title)
	assert.Equal(t, domain.Scope{Level: domain.LevelState, UnitID: 24}, created.Scope)

	// Same position, year and scope again.
	_, err = svc.CreateElection(ctx, service.CreateElectionInput{
		Position:     domain.PositionGovernorship,
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		ScopeID:      24,
	})
	assert.ErrorIs(t, err, service.ErrElectionExists)
}

func TestCreateElection_ScopeValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateElection(ctx, service.CreateElectionInput{
		Position:     domain.PositionGovernorship,
		ElectionYear: 2027,
	})
	assert.ErrorIs(t, err, service.ErrScopeRequired)

	_, err = svc.CreateElection(ctx, service.CreateElectionInput{
		Position:     domain.PositionGovernorship,
		ElectionYear: 2027,
		ScopeID:      999,
	})
	assert.ErrorIs(t, err, service.ErrScopeUnitNotFound)

	_, err = svc.CreateElection(ctx, service.CreateElectionInput{
		Position:     "mayor",
		ElectionYear: 2027,
		ScopeID:      24,
	})
	assert.ErrorIs(t, err, service.ErrUnknownPosition)
}

func mustCreateElection(t *testing.T, svc *service.ElectionService, position domain.Position, scopeID uint, status domain.ElectionStatus) domain.Election {
	t.Helper()

	election, err := svc.CreateElection(context.Background(), service.CreateElectionInput{
		Position:     position,
		ElectionYear: 2027,
		ElectionDate: time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Status:       status,
		ScopeID:      scopeID,
	})
	require.NoError(t, err)
	return election
}

func TestUpdateElection_Lifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)

	completed := domain.StatusCompleted
	_, err := svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &completed})
	assert.ErrorIs(t, err, service.ErrInvalidTransition, "cannot complete without voting")

	ongoing := domain.StatusOngoing
	updated, err := svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &ongoing})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOngoing, updated.Status)

	updated, err = svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	// Completed is terminal.
	cancelled := domain.StatusCancelled
	_, err = svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &cancelled})
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestUpdateElection_ConcurrentTransition(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)

	// Cancel the election between the lifecycle check and the write.
	// The write carries the status the check saw, so the stale request
	// must lose instead of reviving a cancelled election.
	cancelled := domain.StatusCancelled
	repo.beforeStatusUpdate = func() {
		repo.beforeStatusUpdate = nil
		_, err := svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &cancelled})
		require.NoError(t, err)
	}

	ongoing := domain.StatusOngoing
	_, err := svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &ongoing})
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	final, err := svc.GetElection(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, final.Status)
}

func TestBulkSetStatus_ConcurrentTransition(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)

	cancelled := domain.StatusCancelled
	repo.beforeStatusUpdate = func() {
		repo.beforeStatusUpdate = nil
		_, err := svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &cancelled})
		require.NoError(t, err)
	}

	outcome, err := svc.BulkSetStatus(ctx, []uint{election.ID}, domain.StatusOngoing)
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.Updated)
	assert.Equal(t, 1, outcome.Failed)
	require.Len(t, outcome.Outcomes, 1)
	assert.Equal(t, "status changed concurrently", outcome.Outcomes[0].Reason)

	final, err := svc.GetElection(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, final.Status)
}

func TestUpdateElection_FieldsWithoutStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)

	title := "Rescheduled Governorship Poll"
	updated, err := svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, domain.StatusUpcoming, updated.Status)

	_, err = svc.UpdateElection(ctx, 999, domain.ElectionUpdate{Title: &title})
	assert.ErrorIs(t, err, service.ErrElectionNotFound)
}

func TestBulkSetStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	upcoming := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)
	alreadyDone := mustCreateElection(t, svc, domain.PositionGovernorship, 25, domain.StatusUpcoming)
	ongoing := domain.StatusOngoing
	completed := domain.StatusCompleted
	_, err := svc.UpdateElection(ctx, alreadyDone.ID, domain.ElectionUpdate{Status: &ongoing})
	require.NoError(t, err)
	_, err = svc.UpdateElection(ctx, alreadyDone.ID, domain.ElectionUpdate{Status: &completed})
	require.NoError(t, err)

	outcome, err := svc.BulkSetStatus(ctx, []uint{upcoming.ID, alreadyDone.ID, 999}, domain.StatusOngoing)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Updated)
	assert.Equal(t, 2, outcome.Failed)
	require.Len(t, outcome.Outcomes, 3)

	assert.True(t, outcome.Outcomes[0].Updated)
	assert.False(t, outcome.Outcomes[1].Updated)
	assert.Equal(t, "cannot transition from completed to ongoing", outcome.Outcomes[1].Reason)
	assert.False(t, outcome.Outcomes[2].Updated)
	assert.Equal(t, "election not found", outcome.Outcomes[2].Reason)

	_, err = svc.BulkSetStatus(ctx, []uint{upcoming.ID}, "paused")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestAddCandidate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	governorship := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)
	senatorial := mustCreateElection(t, svc, domain.PositionSenatorial, 101, domain.StatusUpcoming)

	candidate, err := svc.AddCandidate(ctx, governorship.ID, service.AddCandidateInput{
		Name:        "Adebayo Ogunlesi",
		PartyID:     1,
		RunningMate: "Ngozi Okafor",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ngozi Okafor", candidate.RunningMate, "joint ticket keeps the running mate")

	candidate, err = svc.AddCandidate(ctx, senatorial.ID, service.AddCandidateInput{
		Name:        "Chinedu Eze",
		PartyID:     2,
		RunningMate: "Should Be Dropped",
	})
	require.NoError(t, err)
	assert.Empty(t, candidate.RunningMate, "single-seat positions drop the running mate")

	_, err = svc.AddCandidate(ctx, governorship.ID, service.AddCandidateInput{Name: "X", PartyID: 3})
	assert.ErrorIs(t, err, service.ErrPartyInactive)

	_, err = svc.AddCandidate(ctx, governorship.ID, service.AddCandidateInput{Name: "X", PartyID: 999})
	assert.ErrorIs(t, err, service.ErrPartyNotFound)

	_, err = svc.AddCandidate(ctx, 999, service.AddCandidateInput{Name: "X", PartyID: 1})
	assert.ErrorIs(t, err, service.ErrElectionNotFound)
}

func TestRemoveCandidate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)
	candidate, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Adebayo Ogunlesi", PartyID: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveCandidate(ctx, election.ID, 999), service.ErrCandidateNotFound)

	require.NoError(t, svc.RemoveCandidate(ctx, election.ID, candidate.ID))

	candidates, err := svc.ListCandidates(ctx, election.ID)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRemoveCandidate_WithVotes(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)
	candidate, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Adebayo Ogunlesi", PartyID: 1})
	require.NoError(t, err)

	ongoing := domain.StatusOngoing
	_, err = svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &ongoing})
	require.NoError(t, err)

	_, err = svc.CastVote(ctx, election.ID, candidate.ID, 42, "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveCandidate(ctx, election.ID, candidate.ID), service.ErrCandidateHasVotes)
}

func TestCastVote(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusUpcoming)
	candidate, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Adebayo Ogunlesi", PartyID: 1})
	require.NoError(t, err)

	// Voting is rejected before the election opens.
	_, err = svc.CastVote(ctx, election.ID, candidate.ID, 42, "")
	assert.ErrorIs(t, err, service.ErrNotVotable)

	ongoing := domain.StatusOngoing
	_, err = svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &ongoing})
	require.NoError(t, err)

	_, err = svc.CastVote(ctx, election.ID, 999, 42, "")
	assert.ErrorIs(t, err, service.ErrCandidateNotFound)

	vote, err := svc.CastVote(ctx, election.ID, candidate.ID, 42, "tag-1")
	require.NoError(t, err)
	assert.Equal(t, uint(42), vote.VoterID)
	assert.False(t, vote.CastAt.IsZero())

	// A second ballot from the same voter is a duplicate even for a
	// different candidate.
	other, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Chinedu Eze", PartyID: 2})
	require.NoError(t, err)
	_, err = svc.CastVote(ctx, election.ID, other.ID, 42, "")
	assert.ErrorIs(t, err, service.ErrDuplicateVote)

	results, err := svc.GetResults(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, results.TotalVotesCast)

	// Closing the election freezes the ledger.
	completed := domain.StatusCompleted
	_, err = svc.UpdateElection(ctx, election.ID, domain.ElectionUpdate{Status: &completed})
	require.NoError(t, err)
	_, err = svc.CastVote(ctx, election.ID, candidate.ID, 43, "")
	assert.ErrorIs(t, err, service.ErrNotVotable)
}

func TestCastVote_ConcurrentDuplicates(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusOngoing)
	candidate, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Adebayo Ogunlesi", PartyID: 1})
	require.NoError(t, err)

	const attempts = 32
	var successes, duplicates atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.CastVote(ctx, election.ID, candidate.ID, 42, "")
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, service.ErrDuplicateVote):
				duplicates.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load(), "exactly one ballot must be recorded")
	assert.Equal(t, int32(attempts-1), duplicates.Load())

	results, err := svc.GetResults(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, results.TotalVotesCast)
	require.Len(t, results.Candidates, 1)
	assert.Equal(t, 1, results.Candidates[0].Votes)
}

func TestGetResults_Ordering(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusOngoing)

	first, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Adebayo Ogunlesi", PartyID: 1})
	require.NoError(t, err)
	second, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Chinedu Eze", PartyID: 2})
	require.NoError(t, err)
	third, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Funke Alabi", PartyID: 2})
	require.NoError(t, err)

	// second gets 2 votes, first and third get 1 each.
	for voter, candidateID := range map[uint]uint{10: second.ID, 11: second.ID, 12: first.ID, 13: third.ID} {
		_, err := svc.CastVote(ctx, election.ID, candidateID, voter, "")
		require.NoError(t, err)
	}

	results, err := svc.GetResults(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, results.TotalVotesCast)
	require.Len(t, results.Candidates, 3)

	assert.Equal(t, second.ID, results.Candidates[0].ID)
	assert.Equal(t, 2, results.Candidates[0].Votes)
	// Tie between first and third breaks on creation order.
	assert.Equal(t, first.ID, results.Candidates[1].ID)
	assert.Equal(t, third.ID, results.Candidates[2].ID)
}

func TestDeleteElection_Cascades(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	election := mustCreateElection(t, svc, domain.PositionGovernorship, 24, domain.StatusOngoing)
	candidate, err := svc.AddCandidate(ctx, election.ID, service.AddCandidateInput{Name: "Adebayo Ogunlesi", PartyID: 1})
	require.NoError(t, err)
	_, err = svc.CastVote(ctx, election.ID, candidate.ID, 42, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteElection(ctx, election.ID))

	_, err = svc.GetResults(ctx, election.ID)
	assert.ErrorIs(t, err, service.ErrElectionNotFound)

	_, err = svc.CastVote(ctx, election.ID, candidate.ID, 43, "")
	assert.ErrorIs(t, err, service.ErrElectionNotFound)

	assert.ErrorIs(t, svc.DeleteElection(ctx, election.ID), service.ErrElectionNotFound)
}

func TestResolveScope(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	units, unitErrs, err := svc.ResolveScope(ctx, domain.PositionLGAChairman, domain.Selection{All: true})
	require.NoError(t, err)
	assert.Empty(t, unitErrs)
	assert.Len(t, units, 2)

	units, unitErrs, err = svc.ResolveScope(ctx, domain.PositionCouncillor, domain.Selection{IDs: []uint{9001, 9001, 8888}})
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "Ikeja Ward A", units[0].Name)
	require.Len(t, unitErrs, 1)
	assert.Equal(t, uint(8888), unitErrs[0].UnitID)

	_, _, err = svc.ResolveScope(ctx, domain.PositionSenatorial, domain.Selection{})
	assert.ErrorIs(t, err, service.ErrEmptySelection)

	_, _, err = svc.ResolveScope(ctx, "mayor", domain.Selection{All: true})
	assert.ErrorIs(t, err, service.ErrUnknownPosition)
}
