package domain

type ScopeLevel string

const (
	LevelNational           ScopeLevel = "national"
	LevelState              ScopeLevel = "state"
	LevelSenatorialDistrict ScopeLevel = "senatorial_district"
	LevelLGA                ScopeLevel = "lga"
	LevelWard               ScopeLevel = "ward"
)

// scopeLevels is the fixed position-to-level policy.
var scopeLevels = map[Position]ScopeLevel{
	PositionPresidential:  LevelNational,
	PositionGovernorship:  LevelState,
	PositionHouseOfReps:   LevelState,
	PositionStateAssembly: LevelState,
	PositionSenatorial:    LevelSenatorialDistrict,
	PositionLGAChairman:   LevelLGA,
	PositionCouncillor:    LevelWard,
}

func ScopeLevelFor(p Position) (ScopeLevel, bool) {
	level, ok := scopeLevels[p]
	return level, ok
}

// Scope identifies the one geographic unit an election belongs to.
// UnitID is zero exactly when Level is national.
type Scope struct {
	Level  ScopeLevel `json:"level"`
	UnitID uint       `json:"unit_id,omitempty"`
}

func NationalScope() Scope {
	return Scope{Level: LevelNational}
}

func (s Scope) IsValid() bool {
	switch s.Level {
	case LevelNational:
		return s.UnitID == 0
	case LevelState, LevelSenatorialDistrict, LevelLGA, LevelWard:
		return s.UnitID != 0
	}
	return false
}

// ScopeUnit is one concrete target resolved from a selection, e.g. one
// state or one ward.
type ScopeUnit struct {
	Level ScopeLevel `json:"level"`
	ID    uint       `json:"id,omitempty"`
	Name  string     `json:"name"`
}

func (u ScopeUnit) Scope() Scope {
	return Scope{Level: u.Level, UnitID: u.ID}
}

// Selection is a request for scope units: either every unit at the
// position's level, or an explicit id list.
type Selection struct {
	All bool   `json:"all"`
	IDs []uint `json:"ids,omitempty"`
}
