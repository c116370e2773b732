package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetAll retrieves all properties
func (r *PropertyRepository) GetAll() ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Delete deletes a property
func (r *PropertyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Property{}, "id = ?", id).Error
}
