package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultArchiveReason is recorded when a tenant is archived without a reason
const defaultArchiveReason = "Archived"

// TenantService handles business logic for the tenant lifecycle
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	noteRepo  repository.NoteRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, noteRepo repository.NoteRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		noteRepo:  noteRepo,
		validator: validator,
	}
}

// CreateTenantRequest represents the data needed to create a tenant
type CreateTenantRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Unit       string `json:"unit" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
}

// ArchiveTenantRequest carries the optional free-text archive reason
type ArchiveTenantRequest struct {
	Reason string `json:"reason"`
}

// CreateTenant creates a new active tenant.
//
// The email is trimmed and lowercased, then checked case-insensitively
// against every tenant, archived included. An archived match is rejected
// with PreviousTenantError (the caller must acknowledge the history); an
// active match is rejected with DuplicateEmailError. The check is
// check-then-act: two concurrent creates with the same email can both pass
// it. A unique index on LOWER(email) is the only way to close that race,
// and legacy data currently rules one out.
func (s *TenantService) CreateTenant(req *CreateTenantRequest) (*models.Tenant, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Unit = strings.TrimSpace(req.Unit)
	req.PropertyID = strings.TrimSpace(req.PropertyID)

	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "missing required fields")
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant: %w", err)
	}

	if existing != nil && existing.IsArchived {
		noteCount, err := s.noteRepo.CountByTenantID(existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count notes for archived tenant: %w", err)
		}
		return nil, &apperrors.PreviousTenantError{
			TenantID:       existing.ID,
			ArchivedAt:     existing.ArchivedAt,
			ArchivedReason: existing.ArchivedReason,
			NoteCount:      noteCount,
		}
	}

	if existing != nil {
		return nil, &apperrors.DuplicateEmailError{TenantID: existing.ID}
	}

	tenant := &models.Tenant{
		Name:       req.Name,
		Email:      req.Email,
		Unit:       req.Unit,
		PropertyID: req.PropertyID,
		IsArchived: false,
	}
	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return tenant, nil
}

// ArchiveTenant soft-deletes a tenant. The row and its notes are retained
// forever; only the archive flag and metadata change. Re-archiving an
// already-archived tenant overwrites archivedAt/archivedReason with no
// history kept, matching how the portal has always behaved.
func (s *TenantService) ArchiveTenant(id uuid.UUID, reason string) (*models.Tenant, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	now := time.Now()
	tenant.IsArchived = true
	tenant.ArchivedAt = &now
	if r := strings.TrimSpace(reason); r != "" {
		tenant.ArchivedReason = r
	} else {
		tenant.ArchivedReason = defaultArchiveReason
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to archive tenant: %w", err)
	}

	return tenant, nil
}

// ListTenants returns tenants newest-created first, excluding archived ones
// unless includeArchived is set
func (s *TenantService) ListTenants(includeArchived bool) ([]models.Tenant, error) {
	tenants, err := s.repo.GetAll(includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}
