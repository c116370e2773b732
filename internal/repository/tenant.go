package repository

import (
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByEmail retrieves a tenant by email, case-insensitively, across active
// and archived tenants. Legacy rows may predate write-time lowercasing, so
// the comparison folds both sides.
func (r *TenantRepository) GetByEmail(email string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves tenants newest-created first. Archived tenants are
// excluded unless includeArchived is set.
func (r *TenantRepository) GetAll(includeArchived bool) ([]models.Tenant, error) {
	var tenants []models.Tenant
	query := r.db.Order("created_at DESC")
	if !includeArchived {
		query = query.Where("is_archived <> TRUE")
	}
	if err := query.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// CountActiveByPropertyID counts non-archived tenants referencing a property id
func (r *TenantRepository) CountActiveByPropertyID(propertyID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tenant{}).
		Where("property_id = ? AND is_archived <> TRUE", propertyID).
		Count(&count).Error
	return count, err
}

// Update updates a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// UpdatePropertyID rewrites a single tenant's property reference
func (r *TenantRepository) UpdatePropertyID(tenantID uuid.UUID, propertyID string) error {
	return r.db.Model(&models.Tenant{}).Where("id = ?", tenantID).
		Update("property_id", propertyID).Error
}
