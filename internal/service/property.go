package service

import (
	"errors"
	"fmt"
	"strings"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyService handles business logic for properties
type PropertyService struct {
	repo       repository.PropertyRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *PropertyService {
	return &PropertyService{
		repo:       repo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// CreatePropertyRequest represents the data needed to create a property
type CreatePropertyRequest struct {
	Name     string `json:"name" validate:"required"`
	Suite    string `json:"suite"`
	PhotoURL string `json:"photoUrl"`
}

// CreateProperty creates a new property
func (s *PropertyService) CreateProperty(req *CreatePropertyRequest) (*models.Property, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "property name is required")
	}

	property := &models.Property{
		Name:     req.Name,
		Suite:    strings.TrimSpace(req.Suite),
		PhotoURL: strings.TrimSpace(req.PhotoURL),
	}
	if err := s.repo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// ListProperties retrieves all properties
func (s *PropertyService) ListProperties() ([]models.Property, error) {
	properties, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// DeleteProperty removes a property unless active tenants still reference
// it. Archived tenants never block deletion; their stale references are the
// repair service's problem, not the guard's.
func (s *PropertyService) DeleteProperty(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("failed to get property: %w", err)
	}

	activeCount, err := s.tenantRepo.CountActiveByPropertyID(id.String())
	if err != nil {
		return fmt.Errorf("failed to count active tenants: %w", err)
	}
	if activeCount > 0 {
		return &apperrors.PropertyHasTenantsError{ActiveTenantCount: activeCount}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}
