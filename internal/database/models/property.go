package models

// Property represents a building managed through the portal.
// Public-facing property data is mirrored into the Webflow CMS; this row
// is the system of record for tenant references.
type Property struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Suite    string `json:"suite,omitempty" gorm:"size:100" validate:"max=100"`
	PhotoURL string `json:"photoUrl,omitempty" gorm:"size:2000" validate:"max=2000"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}
