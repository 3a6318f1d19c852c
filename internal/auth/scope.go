package auth

import (
	"errors"
	"fmt"

	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShelterIDSet is the set of shelter ids a caller may act on within their
// tenant.
type ShelterIDSet map[uuid.UUID]struct{}

// NewShelterIDSet builds a set from a slice of ids
func NewShelterIDSet(ids []uuid.UUID) ShelterIDSet {
	set := make(ShelterIDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the shelter id is in the set
func (s ShelterIDSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the set members as a slice (order unspecified)
func (s ShelterIDSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// ScopeResolver computes which shelters a resolved user may act on, and
// guards individual resources against that set.
type ScopeResolver struct {
	shelterRepo    repository.ShelterRepositoryInterface
	membershipRepo repository.StaffMembershipRepositoryInterface
	animalRepo     repository.AnimalRepositoryInterface
}

// NewScopeResolver creates a new scope resolver
func NewScopeResolver(
	shelterRepo repository.ShelterRepositoryInterface,
	membershipRepo repository.StaffMembershipRepositoryInterface,
	animalRepo repository.AnimalRepositoryInterface,
) *ScopeResolver {
	return &ScopeResolver{
		shelterRepo:    shelterRepo,
		membershipRepo: membershipRepo,
		animalRepo:     animalRepo,
	}
}

// AccessibleShelterIDs computes the caller's scope within the tenant:
// all org shelters for the admin, the membership shelters for staff
// (ErrNoMembership when a staff user has not been assigned yet). Any other
// role is rejected; the role gate should have stopped it before this point.
func (r *ScopeResolver) AccessibleShelterIDs(user *models.User, org *models.Organization) (ShelterIDSet, error) {
	switch user.Role {
	case models.RoleOrgAdmin:
		ids, err := r.shelterRepo.GetIDsByOrganizationID(org.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list organization shelters: %w", err)
		}
		return NewShelterIDSet(ids), nil

	case models.RoleStaff:
		memberships, err := r.membershipRepo.GetByUserID(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list staff memberships: %w", err)
		}
		if len(memberships) == 0 {
			return nil, apperrors.ErrNoMembership
		}
		set := make(ShelterIDSet, len(memberships))
		for _, m := range memberships {
			set[m.ShelterID] = struct{}{}
		}
		return set, nil

	default:
		return nil, apperrors.ErrRoleForbidden
	}
}

// GuardShelter checks existence first (404), then scope membership (403),
// and returns the shelter only when both pass. A shelter belonging to a
// different tenant is reported as not found rather than out of scope, so
// the id space of other tenants is not confirmed.
func (r *ScopeResolver) GuardShelter(org *models.Organization, scope ShelterIDSet, shelterID uuid.UUID) (*models.Shelter, error) {
	shelter, err := r.shelterRepo.GetByID(shelterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShelterNotFound
		}
		return nil, fmt.Errorf("failed to look up shelter: %w", err)
	}
	if shelter.OrganizationID != org.ID {
		return nil, apperrors.ErrShelterNotFound
	}
	if !scope.Contains(shelter.ID) {
		return nil, apperrors.ErrOutOfScope
	}
	return shelter, nil
}

// GuardAnimal checks that the animal exists (404) and that its shelter is in
// the caller's scope (403), and returns it only when both pass.
func (r *ScopeResolver) GuardAnimal(scope ShelterIDSet, animalID uuid.UUID) (*models.Animal, error) {
	animal, err := r.animalRepo.GetByID(animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to look up animal: %w", err)
	}
	if !scope.Contains(animal.ShelterID) {
		return nil, apperrors.ErrOutOfScope
	}
	return animal, nil
}
