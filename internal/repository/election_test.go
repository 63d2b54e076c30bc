package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
	"github.com/agbanzy/apcconnctv2-sub002/internal/repository/dao"
)

// The scope sum type is flattened into four nullable-as-zero columns so
// the composite unique index can enforce one election per unit. The
// mapping must round-trip and must never populate more than one column.
func TestScopeColumnMapping(t *testing.T) {
	r := NewElectionRepository(nil)

	tests := []struct {
		name  string
		scope domain.Scope
	}{
		{"national", domain.NationalScope()},
		{"state", domain.Scope{Level: domain.LevelState, UnitID: 24}},
		{"senatorial district", domain.Scope{Level: domain.LevelSenatorialDistrict, UnitID: 101}},
		{"lga", domain.Scope{Level: domain.LevelLGA, UnitID: 501}},
		{"ward", domain.Scope{Level: domain.LevelWard, UnitID: 9001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daoElection := r.domainToDao(domain.Election{
				Position:     domain.PositionGovernorship,
				ElectionYear: 2027,
				Scope:        tt.scope,
			})

			populated := 0
			for _, id := range []uint{daoElection.StateID, daoElection.SenatorialDistrictID, daoElection.LgaID, daoElection.WardID} {
				if id != 0 {
					populated++
				}
			}
			if tt.scope.Level == domain.LevelNational {
				assert.Equal(t, 0, populated)
			} else {
				require.Equal(t, 1, populated)
			}

			assert.Equal(t, tt.scope, r.daoToDomain(daoElection).Scope)
		})
	}
}

func TestCreateElectionRejectsInvalidScope(t *testing.T) {
	// A nil DAO proves the guard fires before any storage call.
	r := NewElectionRepository(nil)

	tests := []struct {
		name  string
		scope domain.Scope
	}{
		{"state level without unit", domain.Scope{Level: domain.LevelState}},
		{"national with unit", domain.Scope{Level: domain.LevelNational, UnitID: 9}},
		{"unknown level", domain.Scope{Level: "planet", UnitID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.CreateElection(context.Background(), domain.Election{
				Position:     domain.PositionGovernorship,
				ElectionYear: 2027,
				Scope:        tt.scope,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scope")
		})
	}
}

// recordingDAO captures the update map handed to the storage layer.
type recordingDAO struct {
	ElectionDAO

	updates map[string]interface{}
	found   dao.Election
}

func (d *recordingDAO) Update(_ context.Context, _ uint, updates map[string]interface{}) (dao.Election, error) {
	d.updates = updates
	return d.found, nil
}

func (d *recordingDAO) FindByID(_ context.Context, _ uint) (dao.Election, error) {
	return d.found, nil
}

// A nil pointer means leave unchanged; only set fields may reach the
// update statement.
func TestUpdateElectionOmitsNilFields(t *testing.T) {
	recorder := &recordingDAO{found: dao.Election{ID: 1, Position: "governorship", ScopeLevel: "state", StateID: 24}}
	r := NewElectionRepository(recorder)

	title := "Postponed"
	status := domain.StatusCancelled
	_, err := r.UpdateElection(context.Background(), 1, domain.ElectionUpdate{Title: &title, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"title": "Postponed", "status": "cancelled"}, recorder.updates)

	// No set fields at all skips the update and just re-reads.
	recorder.updates = nil
	_, err = r.UpdateElection(context.Background(), 1, domain.ElectionUpdate{})
	require.NoError(t, err)
	assert.Nil(t, recorder.updates)
}

// guardedDAO records the status predicate handed to the storage layer
// and can simulate losing the write to a concurrent transition.
type guardedDAO struct {
	ElectionDAO

	predicate string
	conflict  bool
	found     dao.Election
}

func (d *guardedDAO) UpdateIfStatus(_ context.Context, _ uint, status string, _ map[string]interface{}) (dao.Election, error) {
	d.predicate = status
	if d.conflict {
		return dao.Election{}, dao.ErrStatusConflict
	}
	return d.found, nil
}

func TestUpdateElectionStatusGuard(t *testing.T) {
	guard := &guardedDAO{found: dao.Election{ID: 1, Position: "governorship", Status: "ongoing", ScopeLevel: "state", StateID: 24}}
	r := NewElectionRepository(guard)

	status := domain.StatusOngoing
	updated, err := r.UpdateElectionStatus(context.Background(), 1, domain.StatusUpcoming, domain.ElectionUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "upcoming", guard.predicate)
	assert.Equal(t, domain.StatusOngoing, updated.Status)

	guard.conflict = true
	_, err = r.UpdateElectionStatus(context.Background(), 1, domain.StatusUpcoming, domain.ElectionUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrStatusConflict)
}
