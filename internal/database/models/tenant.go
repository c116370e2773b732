package models

import "time"

// Tenant represents a renter attached to a property.
//
// PropertyID is deliberately a plain string column, not a uuid foreign key:
// rows migrated from the legacy system may still hold a property *name*, or
// an id of a property that no longer exists. The repair service heals these
// values; everywhere else treats the column as an opaque property id.
//
// Tenants are never hard-deleted. Archiving sets IsArchived plus the archive
// metadata so the tenant's notes stay reachable forever.
type Tenant struct {
	BaseModel
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Email          string     `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	Unit           string     `json:"unit" gorm:"not null;size:50" validate:"required,min=1,max=50"`
	PropertyID     string     `json:"propertyId" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	IsArchived     bool       `json:"isArchived" gorm:"not null;default:false;index"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	ArchivedReason string     `json:"archivedReason,omitempty" gorm:"size:500"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
