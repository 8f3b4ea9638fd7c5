package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel is the GORM-specific struct for the 'contacts' table.
// Name and address are flattened into columns. Column widths follow the
// store schema: only email is bounded.
type ContactModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName   string    `gorm:"type:text;not null"`
	LastName    string    `gorm:"type:text;not null"`
	Email       string    `gorm:"type:varchar(50);not null"`
	PhoneNumber string    `gorm:"type:text;not null"`
	Street      string    `gorm:"type:text;not null"`
	HouseNumber string    `gorm:"type:text;not null"`
	City        string    `gorm:"type:text;not null"`
	ZipCode     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index:idx_contacts_created_at"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
