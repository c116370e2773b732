package models

import "time"

// DocumentType enumerates the kinds of documents tenants can pick
type DocumentType string

const (
	DocumentTypeLease       DocumentType = "lease"
	DocumentTypeMaintenance DocumentType = "maintenance"
	DocumentTypeInspection  DocumentType = "inspection"
	DocumentTypeVacate      DocumentType = "vacate"
	DocumentTypeOther       DocumentType = "other"
)

// ValidDocumentType reports whether t is one of the allowed document types
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentTypeLease, DocumentTypeMaintenance, DocumentTypeInspection,
		DocumentTypeVacate, DocumentTypeOther:
		return true
	}
	return false
}

// Document is uploaded PDF metadata. The file bytes live in the uploads
// directory under Filename; a row without a filename is metadata-only.
type Document struct {
	BaseModel
	Type       DocumentType `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Label      string       `json:"label" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Filename   string       `json:"filename,omitempty" gorm:"size:500"`
	UploadedAt time.Time    `json:"uploadedAt" gorm:"autoCreateTime"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
