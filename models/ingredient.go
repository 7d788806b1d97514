package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ingredient is one owned pantry item. Identifier is the barcode for
// scanned items and a UUID for manual entries; rows are replaced by
// (user_id, identifier), never mutated in place. Deletes are hard so a
// removed identifier can be re-added.
type Ingredient struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"uniqueIndex:idx_user_identifier;not null"`
	Identifier    string `gorm:"uniqueIndex:idx_user_identifier;size:64;not null"`
	Name          string `gorm:"not null"`
	Brand         string
	Allergens     datatypes.JSON // array of allergen tags, e.g. ["en:milk"]
	SourceBarcode string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
