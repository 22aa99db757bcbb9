package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a scanned inventory record. Material and barcode are both unique
// identifiers; the unique indexes are what actually close the check-then-insert
// race, the service pre-check only exists for a friendlier error.
//
// Category is a plain label, not a foreign key: a product may carry a name that
// no Category row has.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Material    int64     `gorm:"not null;uniqueIndex" json:"material"`
	Barcode     string    `gorm:"size:255;not null;uniqueIndex" json:"barcode"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Category    string    `gorm:"size:100;not null;default:'Uncategorized';index" json:"category"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
