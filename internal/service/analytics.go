package service

import (
	"fmt"

	"pawbase-backend/internal/database/models"
	"pawbase-backend/internal/repository"
)

// DefaultTopBreedsLimit bounds the top-adopted-breeds report.
const DefaultTopBreedsLimit = 5

// AnalyticsService aggregates adoption outcomes for the caller's tenant.
// Only the org admin reaches it; the route is gated on role before any query
// runs.
type AnalyticsService struct {
	repo repository.AnalyticsRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.AnalyticsRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// AnalyticsResponse is the org-wide adoption report
type AnalyticsResponse struct {
	SheltersSuccess []repository.ShelterAdoptionStats `json:"shelters_success"`
	TopBreeds       []repository.BreedAdoptionCount   `json:"top_breeds"`
}

// Overview returns per-shelter adoption success rates and the most adopted
// breeds within the organization.
func (s *AnalyticsService) Overview(org *models.Organization) (*AnalyticsResponse, error) {
	shelters, err := s.repo.AdoptionSuccessByShelter(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shelter success rates: %w", err)
	}

	breeds, err := s.repo.TopAdoptedBreeds(org.ID, DefaultTopBreedsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top breeds: %w", err)
	}

	return &AnalyticsResponse{
		SheltersSuccess: shelters,
		TopBreeds:       breeds,
	}, nil
}
