package models

// UserRole is the single authorization axis for a user.
type UserRole string

const (
	RoleOrgAdmin UserRole = "org_admin"
	RoleStaff    UserRole = "staff"
	RoleAdopter  UserRole = "adopter"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleOrgAdmin, RoleStaff, RoleAdopter:
		return true
	}
	return false
}

// AdoptionStatus tracks an animal through the adoption lifecycle.
type AdoptionStatus string

const (
	AdoptionStatusAvailable  AdoptionStatus = "Available"
	AdoptionStatusPending    AdoptionStatus = "Pending"
	AdoptionStatusAdopted    AdoptionStatus = "Adopted"
	AdoptionStatusQuarantine AdoptionStatus = "Quarantine"
)

// RequestStatus is the state of an adoption request.
type RequestStatus string

const (
	RequestStatusSubmitted RequestStatus = "Submitted"
	RequestStatusApproved  RequestStatus = "Approved"
	RequestStatusRejected  RequestStatus = "Rejected"
)
