package models

import (
	"time"

	"gorm.io/datatypes"
)

// MealPlan holds the recipe titles assigned to one calendar day,
// keyed by (user_id, date). Date is an ISO day string, no time part.
// Rows are deleted outright when their meal set empties.
type MealPlan struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"uniqueIndex:idx_user_date;not null"`
	Date      string         `gorm:"uniqueIndex:idx_user_date;size:10;not null"` // YYYY-MM-DD
	Meals     datatypes.JSON // array of recipe titles, set semantics
	CreatedAt time.Time
	UpdatedAt time.Time
}
