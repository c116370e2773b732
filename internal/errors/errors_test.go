package errors_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "property-portal-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", apperrors.ErrTenantNotFound)

	assert.True(t, errors.Is(wrapped, apperrors.ErrTenantNotFound))
	assert.False(t, errors.Is(wrapped, apperrors.ErrPropertyNotFound))
	assert.True(t, apperrors.IsNotFound(wrapped))
}

func TestValidationErrorMessages(t *testing.T) {
	withField := apperrors.NewValidationError("email", "must be a valid address")
	withoutField := apperrors.NewValidationError("", "missing required fields")

	assert.Equal(t, "validation error: email - must be a valid address", withField.Error())
	assert.Equal(t, "validation error: missing required fields", withoutField.Error())
	assert.True(t, apperrors.IsValidation(withField))
	assert.False(t, apperrors.IsValidation(errors.New("other")))
}

func TestDuplicateEmailErrorCode(t *testing.T) {
	err := &apperrors.DuplicateEmailError{TenantID: uuid.New()}

	assert.Equal(t, "DUPLICATE_EMAIL", err.Code())

	var target *apperrors.DuplicateEmailError
	assert.True(t, errors.As(fmt.Errorf("create failed: %w", err), &target))
	assert.Equal(t, err.TenantID, target.TenantID)
}

func TestPreviousTenantErrorCarriesContext(t *testing.T) {
	archivedAt := time.Now()
	err := &apperrors.PreviousTenantError{
		TenantID:       uuid.New(),
		ArchivedAt:     &archivedAt,
		ArchivedReason: "Lease ended",
		NoteCount:      4,
	}

	assert.Equal(t, "PREVIOUS_TENANT", err.Code())
	assert.Equal(t, int64(4), err.NoteCount)
	assert.Contains(t, err.Error(), "previous tenant")
}

func TestPropertyHasTenantsErrorCode(t *testing.T) {
	err := &apperrors.PropertyHasTenantsError{ActiveTenantCount: 2}

	assert.Equal(t, "PROPERTY_HAS_TENANTS", err.Code())
	assert.Contains(t, err.Error(), "2 active tenant")
}

func TestConfigurationErrors(t *testing.T) {
	assert.True(t, apperrors.IsConfiguration(apperrors.ErrAdminSecretNotSet))
	assert.True(t, apperrors.IsConfiguration(apperrors.ErrWebflowNotConfigured))
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrUnauthorized))
	assert.False(t, apperrors.IsConfiguration(apperrors.ErrUnauthorized))
}
