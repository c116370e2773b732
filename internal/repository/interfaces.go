package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(property *models.Property) error
	GetByID(id uuid.UUID) (*models.Property, error)
	GetAll() ([]models.Property, error)
	Delete(id uuid.UUID) error
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByEmail(email string) (*models.Tenant, error)
	GetAll(includeArchived bool) ([]models.Tenant, error)
	CountActiveByPropertyID(propertyID string) (int64, error)
	Update(tenant *models.Tenant) error
	UpdatePropertyID(tenantID uuid.UUID, propertyID string) error
}

// NoteRepositoryInterface defines the interface for note repository operations
type NoteRepositoryInterface interface {
	Create(note *models.Note) error
	GetByID(id uuid.UUID) (*models.Note, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.Note, error)
	CountByTenantID(tenantID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// DocumentRepositoryInterface defines the interface for document repository operations.
// Documents are append-only: there is no delete or single-document lookup route.
type DocumentRepositoryInterface interface {
	Create(document *models.Document) error
	GetAll() ([]models.Document, error)
}
