package models

import (
	"time"

	"gorm.io/datatypes"
)

// ScannedProduct is the raw OpenFoodFacts record kept per scan,
// keyed by barcode within a user.
type ScannedProduct struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex:idx_user_barcode;not null"`
	Barcode     string `gorm:"uniqueIndex:idx_user_barcode;size:64;not null"`
	Name        string
	Brand       string
	Ingredients string // ingredients_text, free form
	Allergens   datatypes.JSON
	Category    string
	Quantity    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
