package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note
func (r *NoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByID retrieves a note by ID
func (r *NoteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByTenantID retrieves a tenant's notes newest first. Works for archived
// tenants too; notes are retained across archival.
func (r *NoteRepository) GetByTenantID(tenantID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// CountByTenantID counts a tenant's notes
func (r *NoteRepository) CountByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

// Delete deletes a note
func (r *NoteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Note{}, "id = ?", id).Error
}
