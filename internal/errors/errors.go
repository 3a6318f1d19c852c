package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors (HTTP 401).
// The message is intentionally generic so callers cannot probe which check failed.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors (HTTP 403)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrShelterNotFound         = &NotFoundError{Entity: "shelter"}
	ErrStaffNotFound           = &NotFoundError{Entity: "staff membership"}
	ErrAnimalNotFound          = &NotFoundError{Entity: "animal"}
	ErrMedicalRecordNotFound   = &NotFoundError{Entity: "medical record"}
	ErrVaccinationNotFound     = &NotFoundError{Entity: "vaccination"}
	ErrAdoptionRequestNotFound = &NotFoundError{Entity: "adoption request"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrShelterExists      = &AlreadyExistsError{Entity: "shelter", Context: "with this name in the organization"}
	ErrStaffExists        = &AlreadyExistsError{Entity: "staff membership", Context: "for this user and shelter"}
)

// Authorization pipeline errors. These are the terminal denial reasons;
// handlers map them to 401 (token/subject), 403 (role/tenant/scope) and 404.
var (
	ErrInvalidToken     = &AuthenticationError{Message: "could not validate credentials"}
	ErrMalformedSubject = &AuthenticationError{Message: "could not validate credentials"}
	ErrUnknownSubject   = &AuthenticationError{Message: "could not validate credentials"}
	ErrBadCredentials   = &AuthenticationError{Message: "incorrect email or password"}

	ErrRoleForbidden = &AuthorizationError{Message: "user role not authorized for this operation"}
	ErrNoTenant      = &AuthorizationError{Message: "user not linked to any organization"}
	ErrNoMembership  = &AuthorizationError{Message: "staff user has no shelter assignment"}
	ErrOutOfScope    = &AuthorizationError{Message: "resource not in your shelter/org"}
)

// Business Logic Errors
var (
	ErrInvalidStatus         = errors.New("invalid status")
	ErrAnimalNotAvailable    = errors.New("animal is not available for adoption")
	ErrRequestAlreadyDecided = errors.New("adoption request has already been decided")
	ErrNotStaffUser          = errors.New("user must exist and have role 'staff'")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
