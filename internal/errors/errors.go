package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Machine-readable conflict codes surfaced in error response bodies.
// Clients branch on these, never on message text.
const (
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodePreviousTenant     = "PREVIOUS_TENANT"
	CodePropertyHasTenants = "PROPERTY_HAS_TENANTS"
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

// DuplicateEmailError is returned when a new tenant's email already belongs
// to an active tenant. The duplicate check is application-level and
// case-insensitive; it is best-effort, not a storage uniqueness guarantee.
type DuplicateEmailError struct {
	TenantID uuid.UUID
}

func (e *DuplicateEmailError) Error() string {
	return "tenant email already exists"
}

// Code returns the machine-readable conflict code
func (e *DuplicateEmailError) Code() string {
	return CodeDuplicateEmail
}

// PreviousTenantError is returned when a new tenant's email belongs to an
// archived tenant. It carries enough context for the caller to review the
// archived tenant's history before deciding how to proceed.
type PreviousTenantError struct {
	TenantID       uuid.UUID
	ArchivedAt     *time.Time
	ArchivedReason string
	NoteCount      int64
}

func (e *PreviousTenantError) Error() string {
	return "this email belongs to a previous tenant; review notes before re-adding"
}

// Code returns the machine-readable conflict code
func (e *PreviousTenantError) Code() string {
	return CodePreviousTenant
}

// PropertyHasTenantsError blocks deletion of a property that active
// (non-archived) tenants still reference.
type PropertyHasTenantsError struct {
	ActiveTenantCount int64
}

func (e *PropertyHasTenantsError) Error() string {
	return fmt.Sprintf("cannot delete property with %d active tenant(s)", e.ActiveTenantCount)
}

// Code returns the machine-readable conflict code
func (e *PropertyHasTenantsError) Code() string {
	return CodePropertyHasTenants
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPropertyNotFound = &NotFoundError{Entity: "property"}
	ErrTenantNotFound   = &NotFoundError{Entity: "tenant"}
	ErrNoteNotFound     = &NotFoundError{Entity: "note"}
	ErrDocumentNotFound = &NotFoundError{Entity: "document"}
)

// Authentication Errors
var (
	ErrUnauthorized      = &AuthenticationError{Message: "unauthorized"}
	ErrAdminSecretNotSet = &ConfigurationError{Message: "server misconfigured: admin secret missing"}
)

// Webflow Errors
var (
	ErrWebflowNotConfigured = &ConfigurationError{Message: "webflow token or collection id not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
