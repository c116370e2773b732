package repository

import (
	"property-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(document *models.Document) error {
	return r.db.Create(document).Error
}

// GetAll retrieves all documents
func (r *DocumentRepository) GetAll() ([]models.Document, error) {
	var documents []models.Document
	if err := r.db.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}
