package repository

import (
	"context"
	"fmt"

	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
	"github.com/agbanzy/apcconnctv2-sub002/internal/repository/dao"
)

var ErrPartyNotFound = dao.ErrPartyNotFound

type GeographyDAO interface {
	ListStates(ctx context.Context) ([]dao.State, error)
	FindStatesByIDs(ctx context.Context, ids []uint) ([]dao.State, error)
	ListSenatorialDistricts(ctx context.Context) ([]dao.SenatorialDistrict, error)
	FindSenatorialDistrictsByIDs(ctx context.Context, ids []uint) ([]dao.SenatorialDistrict, error)
	ListSenatorialDistrictsByState(ctx context.Context, stateID uint) ([]dao.SenatorialDistrict, error)
	ListLGAs(ctx context.Context) ([]dao.LGA, error)
	FindLGAsByIDs(ctx context.Context, ids []uint) ([]dao.LGA, error)
	ListLGAsByState(ctx context.Context, stateID uint) ([]dao.LGA, error)
	ListWards(ctx context.Context) ([]dao.Ward, error)
	FindWardsByIDs(ctx context.Context, ids []uint) ([]dao.Ward, error)
	ListWardsByLGA(ctx context.Context, lgaID uint) ([]dao.Ward, error)
	ListActiveParties(ctx context.Context) ([]dao.Party, error)
	FindPartyByID(ctx context.Context, id uint) (dao.Party, error)
}

type GeographyRepository struct {
	dao GeographyDAO
}

func NewGeographyRepository(dao GeographyDAO) *GeographyRepository {
	return &GeographyRepository{
		dao: dao,
	}
}

func statesToUnits(states []dao.State) []domain.ScopeUnit {
	units := make([]domain.ScopeUnit, len(states))
	for i, s := range states {
		units[i] = domain.ScopeUnit{Level: domain.LevelState, ID: s.ID, Name: s.Name}
	}
	return units
}

func districtsToUnits(districts []dao.SenatorialDistrict) []domain.ScopeUnit {
	units := make([]domain.ScopeUnit, len(districts))
	for i, d := range districts {
		units[i] = domain.ScopeUnit{Level: domain.LevelSenatorialDistrict, ID: d.ID, Name: d.Name}
	}
	return units
}

func lgasToUnits(lgas []dao.LGA) []domain.ScopeUnit {
	units := make([]domain.ScopeUnit, len(lgas))
	for i, l := range lgas {
		units[i] = domain.ScopeUnit{Level: domain.LevelLGA, ID: l.ID, Name: l.Name}
	}
	return units
}

func wardsToUnits(wards []dao.Ward) []domain.ScopeUnit {
	units := make([]domain.ScopeUnit, len(wards))
	for i, w := range wards {
		units[i] = domain.ScopeUnit{Level: domain.LevelWard, ID: w.ID, Name: w.Name}
	}
	return units
}

// ListUnits returns every scope unit at the given level, ordered by id.
func (r *GeographyRepository) ListUnits(ctx context.Context, level domain.ScopeLevel) ([]domain.ScopeUnit, error) {
	switch level {
	case domain.LevelState:
		states, err := r.dao.ListStates(ctx)
		if err != nil {
			return nil, fmt.Errorf("r.dao.ListStates -> %w", err)
		}
		return statesToUnits(states), nil
	case domain.LevelSenatorialDistrict:
		districts, err := r.dao.ListSenatorialDistricts(ctx)
		if err != nil {
			return nil, fmt.Errorf("r.dao.ListSenatorialDistricts -> %w", err)
		}
		return districtsToUnits(districts), nil
	case domain.LevelLGA:
		lgas, err := r.dao.ListLGAs(ctx)
		if err != nil {
			return nil, fmt.Errorf("r.dao.ListLGAs -> %w", err)
		}
		return lgasToUnits(lgas), nil
	case domain.LevelWard:
		wards, err := r.dao.ListWards(ctx)
		if err != nil {
			return nil, fmt.Errorf("r.dao.ListWards -> %w", err)
		}
		return wardsToUnits(wards), nil
	}

	return nil, fmt.Errorf("no unit table for level %q", level)
}

// FindUnits returns the units among ids that exist at the given level,
// ordered by id. Missing ids are simply absent from the result.
func (r *GeographyRepository) FindUnits(ctx context.Context, level domain.ScopeLevel, ids []uint) ([]domain.ScopeUnit, error) {
	switch level {
	case domain.LevelState:
		states, err := r.dao.FindStatesByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindStatesByIDs -> %w", err)
		}
		return statesToUnits(states), nil
	case domain.LevelSenatorialDistrict:
		districts, err := r.dao.FindSenatorialDistrictsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindSenatorialDistrictsByIDs -> %w", err)
		}
		return districtsToUnits(districts), nil
	case domain.LevelLGA:
		lgas, err := r.dao.FindLGAsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindLGAsByIDs -> %w", err)
		}
		return lgasToUnits(lgas), nil
	case domain.LevelWard:
		wards, err := r.dao.FindWardsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindWardsByIDs -> %w", err)
		}
		return wardsToUnits(wards), nil
	}

	return nil, fmt.Errorf("no unit table for level %q", level)
}

func (r *GeographyRepository) ListStates(ctx context.Context) ([]domain.State, error) {
	states, err := r.dao.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListStates -> %w", err)
	}

	domainStates := make([]domain.State, len(states))
	for i, s := range states {
		domainStates[i] = domain.State{ID: s.ID, Name: s.Name}
	}

	return domainStates, nil
}

func (r *GeographyRepository) ListSenatorialDistrictsByState(ctx context.Context, stateID uint) ([]domain.SenatorialDistrict, error) {
	districts, err := r.dao.ListSenatorialDistrictsByState(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListSenatorialDistrictsByState -> %w", err)
	}

	domainDistricts := make([]domain.SenatorialDistrict, len(districts))
	for i, d := range districts {
		domainDistricts[i] = domain.SenatorialDistrict{ID: d.ID, StateID: d.StateID, Name: d.Name}
	}

	return domainDistricts, nil
}

func (r *GeographyRepository) ListLGAsByState(ctx context.Context, stateID uint) ([]domain.LGA, error) {
	lgas, err := r.dao.ListLGAsByState(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListLGAsByState -> %w", err)
	}

	domainLGAs := make([]domain.LGA, len(lgas))
	for i, l := range lgas {
		domainLGAs[i] = domain.LGA{ID: l.ID, StateID: l.StateID, Name: l.Name}
	}

	return domainLGAs, nil
}

func (r *GeographyRepository) ListWardsByLGA(ctx context.Context, lgaID uint) ([]domain.Ward, error) {
	wards, err := r.dao.ListWardsByLGA(ctx, lgaID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListWardsByLGA -> %w", err)
	}

	domainWards := make([]domain.Ward, len(wards))
	for i, w := range wards {
		domainWards[i] = domain.Ward{ID: w.ID, LGAID: w.LgaID, Name: w.Name}
	}

	return domainWards, nil
}

func (r *GeographyRepository) ListActiveParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := r.dao.ListActiveParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListActiveParties -> %w", err)
	}

	domainParties := make([]domain.Party, len(parties))
	for i, p := range parties {
		domainParties[i] = domain.Party{ID: p.ID, Name: p.Name, Acronym: p.Acronym, IsActive: p.IsActive}
	}

	return domainParties, nil
}

func (r *GeographyRepository) FindPartyByID(ctx context.Context, id uint) (domain.Party, error) {
	party, err := r.dao.FindPartyByID(ctx, id)
	if err != nil {
		if err == dao.ErrPartyNotFound {
			return domain.Party{}, ErrPartyNotFound
		}
		return domain.Party{}, fmt.Errorf("r.dao.FindPartyByID -> %w", err)
	}

	return domain.Party{ID: party.ID, Name: party.Name, Acronym: party.Acronym, IsActive: party.IsActive}, nil
}
