package models

import "github.com/google/uuid"

// Note is an internal admin note attached to a tenant. Notes outlive tenant
// archival and are only removed by explicit deletion.
type Note struct {
	BaseModel
	TenantID   uuid.UUID  `json:"tenantId" gorm:"type:uuid;not null;index" validate:"required"`
	PropertyID *uuid.UUID `json:"propertyId,omitempty" gorm:"type:uuid;index"`
	Text       string     `json:"text" gorm:"not null;size:4000" validate:"required,min=1,max=4000"`
	Tags       StringList `json:"tags" gorm:"type:jsonb"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}
