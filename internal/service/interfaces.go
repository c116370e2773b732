package service

import (
	"io"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	CreateTenant(req *CreateTenantRequest) (*models.Tenant, error)
	ArchiveTenant(id uuid.UUID, reason string) (*models.Tenant, error)
	ListTenants(includeArchived bool) ([]models.Tenant, error)
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	CreateProperty(req *CreatePropertyRequest) (*models.Property, error)
	ListProperties() ([]models.Property, error)
	DeleteProperty(id uuid.UUID) error
}

// NoteServiceInterface defines the interface for note service
type NoteServiceInterface interface {
	CreateNote(tenantID uuid.UUID, req *CreateNoteRequest) (*models.Note, error)
	ListNotesByTenant(tenantID uuid.UUID) ([]models.Note, error)
	DeleteNote(id uuid.UUID) error
}

// DocumentServiceInterface defines the interface for document service
type DocumentServiceInterface interface {
	ListDocuments() ([]models.Document, error)
	UploadDocument(req *UploadDocumentRequest) (*models.Document, error)
}

// RepairServiceInterface defines the interface for the repair service
type RepairServiceInterface interface {
	RepairTenantPropertyIDs() (*RepairReport, error)
}

// WebflowServiceInterface defines the interface for the Webflow mirror service
type WebflowServiceInterface interface {
	ListProperties() ([]WebflowProperty, error)
	CreateProperty(req *CreateWebflowPropertyRequest) (*WebflowProperty, error)
	DeleteProperty(itemID string) error
	BulkUpdateFromCSV(r io.Reader) (*BulkUpdateReport, error)
}
