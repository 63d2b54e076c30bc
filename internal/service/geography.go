package service

import (
	"context"
	"fmt"

	"github.com/agbanzy/apcconnctv2-sub002/internal/domain"
)

type GeographyRepository interface {
	ListStates(ctx context.Context) ([]domain.State, error)
	ListSenatorialDistrictsByState(ctx context.Context, stateID uint) ([]domain.SenatorialDistrict, error)
	ListLGAsByState(ctx context.Context, stateID uint) ([]domain.LGA, error)
	ListWardsByLGA(ctx context.Context, lgaID uint) ([]domain.Ward, error)
	ListActiveParties(ctx context.Context) ([]domain.Party, error)
}

// GeographyService serves the read-only reference lookups the admin UI
// needs to build selection requests.
type GeographyService struct {
	repo GeographyRepository
}

func NewGeographyService(repo GeographyRepository) *GeographyService {
	return &GeographyService{
		repo: repo,
	}
}

func (s *GeographyService) ListStates(ctx context.Context) ([]domain.State, error) {
	states, err := s.repo.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListStates -> %w", err)
	}

	return states, nil
}

func (s *GeographyService) ListSenatorialDistricts(ctx context.Context, stateID uint) ([]domain.SenatorialDistrict, error) {
	districts, err := s.repo.ListSenatorialDistrictsByState(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListSenatorialDistrictsByState -> %w", err)
	}

	return districts, nil
}

func (s *GeographyService) ListLGAs(ctx context.Context, stateID uint) ([]domain.LGA, error) {
	lgas, err := s.repo.ListLGAsByState(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListLGAsByState -> %w", err)
	}

	return lgas, nil
}

func (s *GeographyService) ListWards(ctx context.Context, lgaID uint) ([]domain.Ward, error) {
	wards, err := s.repo.ListWardsByLGA(ctx, lgaID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWardsByLGA -> %w", err)
	}

	return wards, nil
}

func (s *GeographyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.repo.ListActiveParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActiveParties -> %w", err)
	}

	return parties, nil
}
