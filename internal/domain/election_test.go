package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ElectionStatus
		to   ElectionStatus
		want bool
	}{
		{"upcoming to ongoing", StatusUpcoming, StatusOngoing, true},
		{"upcoming to cancelled", StatusUpcoming, StatusCancelled, true},
		{"ongoing to completed", StatusOngoing, StatusCompleted, true},
		{"ongoing to cancelled", StatusOngoing, StatusCancelled, true},
		{"upcoming to completed skips voting", StatusUpcoming, StatusCompleted, false},
		{"ongoing back to upcoming", StatusOngoing, StatusUpcoming, false},
		{"completed is terminal", StatusCompleted, StatusOngoing, false},
		{"completed cannot be cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusUpcoming, false},
		{"cancelled cannot complete", StatusCancelled, StatusCompleted, false},
		{"no self loop", StatusOngoing, StatusOngoing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestPositionHasRunningMate(t *testing.T) {
	assert.True(t, PositionPresidential.HasRunningMate())
	assert.True(t, PositionGovernorship.HasRunningMate())
	assert.False(t, PositionSenatorial.HasRunningMate())
	assert.False(t, PositionLGAChairman.HasRunningMate())
	assert.False(t, PositionCouncillor.HasRunningMate())
}

func TestScopeLevelFor(t *testing.T) {
	tests := []struct {
		position Position
		level    ScopeLevel
	}{
		{PositionPresidential, LevelNational},
		{PositionGovernorship, LevelState},
		{PositionHouseOfReps, LevelState},
		{PositionStateAssembly, LevelState},
		{PositionSenatorial, LevelSenatorialDistrict},
		{PositionLGAChairman, LevelLGA},
		{PositionCouncillor, LevelWard},
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			level, ok := ScopeLevelFor(tt.position)

			assert.True(t, ok)
			assert.Equal(t, tt.level, level)
		})
	}

	_, ok := ScopeLevelFor("mayor")
	assert.False(t, ok)
}

func TestScopeIsValid(t *testing.T) {
	assert.True(t, NationalScope().IsValid())
	assert.True(t, Scope{Level: LevelState, UnitID: 25}.IsValid())
	assert.True(t, Scope{Level: LevelWard, UnitID: 9021}.IsValid())

	assert.False(t, Scope{Level: LevelNational, UnitID: 1}.IsValid(), "national scope carries no unit id")
	assert.False(t, Scope{Level: LevelState}.IsValid(), "state scope needs a unit id")
	assert.False(t, Scope{Level: "planet"}.IsValid())
	assert.False(t, Scope{}.IsValid())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []ElectionStatus{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, ElectionStatus("paused").IsValid())
	assert.False(t, ElectionStatus("").IsValid())
}
