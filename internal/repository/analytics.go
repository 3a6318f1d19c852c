package repository

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsRepository computes tenant-wide adoption aggregations
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// AdoptionSuccessByShelter returns, per shelter of the organization, the
// total and approved adoption request counts plus the success rate percentage
func (r *AnalyticsRepository) AdoptionSuccessByShelter(orgID uuid.UUID) ([]ShelterAdoptionStats, error) {
	type row struct {
		ShelterName      string
		TotalRequests    int64
		ApprovedRequests int64
	}
	var rows []row

	err := r.db.Table("shelters").
		Select(`shelters.name AS shelter_name,
			COUNT(adoption_requests.id) AS total_requests,
			COALESCE(SUM(CASE WHEN adoption_requests.status = 'Approved' THEN 1 ELSE 0 END), 0) AS approved_requests`).
		Joins("JOIN animals ON animals.shelter_id = shelters.id").
		Joins("JOIN adoption_requests ON adoption_requests.animal_id = animals.id").
		Where("shelters.organization_id = ?", orgID).
		Group("shelters.id, shelters.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]ShelterAdoptionStats, 0, len(rows))
	for _, row := range rows {
		rate := 0.0
		if row.TotalRequests > 0 {
			rate = math.Round(float64(row.ApprovedRequests)/float64(row.TotalRequests)*10000) / 100
		}
		stats = append(stats, ShelterAdoptionStats{
			ShelterName:      row.ShelterName,
			TotalRequests:    row.TotalRequests,
			ApprovedRequests: row.ApprovedRequests,
			SuccessRate:      rate,
		})
	}
	return stats, nil
}

// TopAdoptedBreeds returns the most-adopted breeds within the organization
func (r *AnalyticsRepository) TopAdoptedBreeds(orgID uuid.UUID, limit int) ([]BreedAdoptionCount, error) {
	if limit <= 0 {
		limit = 3
	}

	var breeds []BreedAdoptionCount
	err := r.db.Table("animals").
		Select("animals.breed_name AS breed_name, COUNT(adoption_requests.id) AS adoptions").
		Joins("JOIN adoption_requests ON adoption_requests.animal_id = animals.id").
		Joins("JOIN shelters ON shelters.id = animals.shelter_id").
		Where("shelters.organization_id = ?", orgID).
		Where("adoption_requests.status = ?", "Approved").
		Group("animals.breed_name").
		Order("COUNT(adoption_requests.id) DESC").
		Limit(limit).
		Scan(&breeds).Error
	if err != nil {
		return nil, err
	}
	return breeds, nil
}
