package testutils

import (
	"fmt"
	"time"

	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	return &models.Property{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Property",
		Suite:    "Suite 100",
		PhotoURL: "https://photos.test.com/test-property.jpg",
	}
}

// WithName sets a custom name for the property
func (f *PropertyFactory) WithName(name string) *models.Property {
	property := f.Create()
	property.Name = name
	return property
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values. Emails are unique per call
// so suites can create several tenants without tripping the duplicate guard.
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Jane Renter",
		Email:      fmt.Sprintf("jane.renter+%s@test.com", id.String()[:8]),
		Unit:       "4B",
		PropertyID: "",
		IsArchived: false,
	}
}

// WithEmail sets a custom email for the tenant
func (f *TenantFactory) WithEmail(email string) *models.Tenant {
	tenant := f.Create()
	tenant.Email = email
	return tenant
}

// WithProperty sets the property reference for the tenant
func (f *TenantFactory) WithProperty(propertyID string) *models.Tenant {
	tenant := f.Create()
	tenant.PropertyID = propertyID
	return tenant
}

// Archived creates an archived tenant with the given reason
func (f *TenantFactory) Archived(reason string) *models.Tenant {
	tenant := f.Create()
	now := time.Now()
	tenant.IsArchived = true
	tenant.ArchivedAt = &now
	tenant.ArchivedReason = reason
	return tenant
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create creates a test Note with default values
func (f *NoteFactory) Create() *models.Note {
	return &models.Note{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		Text:     "Test note about the tenancy",
		Tags:     models.StringList{"general"},
	}
}

// WithTenant sets the tenant ID for the note
func (f *NoteFactory) WithTenant(tenantID uuid.UUID) *models.Note {
	note := f.Create()
	note.TenantID = tenantID
	return note
}

// WithText sets custom text for the note
func (f *NoteFactory) WithText(text string) *models.Note {
	note := f.Create()
	note.Text = text
	return note
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values
func (f *DocumentFactory) Create() *models.Document {
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:       models.DocumentTypeLease,
		Label:      "Test Lease Agreement",
		Filename:   "1700000000000-lease.pdf",
		UploadedAt: time.Now(),
	}
}

// WithType sets a custom type for the document
func (f *DocumentFactory) WithType(docType models.DocumentType) *models.Document {
	document := f.Create()
	document.Type = docType
	return document
}

// FactorySet provides access to all factories
type FactorySet struct {
	Property *PropertyFactory
	Tenant   *TenantFactory
	Note     *NoteFactory
	Document *DocumentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Property: NewPropertyFactory(),
		Tenant:   NewTenantFactory(),
		Note:     NewNoteFactory(),
		Document: NewDocumentFactory(),
	}
}

// CreateTenancy creates a property with an active tenant referencing it by id
func (fs *FactorySet) CreateTenancy() (*models.Property, *models.Tenant) {
	property := fs.Property.Create()
	tenant := fs.Tenant.WithProperty(property.ID.String())
	return property, tenant
}
