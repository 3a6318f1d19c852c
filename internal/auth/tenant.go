package auth

import (
	"errors"
	"fmt"

	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/repository"

	"gorm.io/gorm"
)

// TenantLinkKind discriminates how a user is linked to their organization.
type TenantLinkKind int

const (
	// LinkAdminOf means the user is the organization's admin (admin_id match).
	LinkAdminOf TenantLinkKind = iota
	// LinkStaffOf means the user reaches the organization through a staff
	// membership on one of its shelters.
	LinkStaffOf
)

// TenantLink is the resolved membership path: AdminOf(org) or
// StaffOf(org, shelter). Admin ownership always wins over staff membership;
// the precedence is part of the contract, not incidental code order.
type TenantLink struct {
	Kind         TenantLinkKind
	Organization *models.Organization
	// Shelter is set only for LinkStaffOf.
	Shelter *models.Shelter
}

// TenantResolver determines the single organization a user operates within.
type TenantResolver struct {
	orgRepo        repository.OrganizationRepositoryInterface
	shelterRepo    repository.ShelterRepositoryInterface
	membershipRepo repository.StaffMembershipRepositoryInterface
}

// NewTenantResolver creates a new tenant resolver
func NewTenantResolver(
	orgRepo repository.OrganizationRepositoryInterface,
	shelterRepo repository.ShelterRepositoryInterface,
	membershipRepo repository.StaffMembershipRepositoryInterface,
) *TenantResolver {
	return &TenantResolver{
		orgRepo:        orgRepo,
		shelterRepo:    shelterRepo,
		membershipRepo: membershipRepo,
	}
}

// TenantOf resolves the user's organization from current membership state:
// first an organization the user administers, then the organization owning
// the shelter of the user's first staff membership. Fails with ErrNoTenant
// when neither path yields a result.
func (r *TenantResolver) TenantOf(user *models.User) (*TenantLink, error) {
	org, err := r.orgRepo.GetByAdminID(user.ID)
	if err == nil {
		return &TenantLink{Kind: LinkAdminOf, Organization: org}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up organization by admin: %w", err)
	}

	memberships, err := r.membershipRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up staff memberships: %w", err)
	}
	if len(memberships) == 0 {
		return nil, apperrors.ErrNoTenant
	}

	shelter, err := r.shelterRepo.GetByID(memberships[0].ShelterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dangling membership row; fail closed.
			return nil, apperrors.ErrNoTenant
		}
		return nil, fmt.Errorf("failed to resolve membership shelter: %w", err)
	}

	org, err = r.orgRepo.GetByID(shelter.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoTenant
		}
		return nil, fmt.Errorf("failed to resolve shelter organization: %w", err)
	}

	return &TenantLink{Kind: LinkStaffOf, Organization: org, Shelter: shelter}, nil
}
