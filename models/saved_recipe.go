package models

import "time"

// SavedRecipe is a Spoonacular recipe the user chose to keep.
// Upserts are keyed by (user_id, recipe_id) so re-saving never duplicates.
type SavedRecipe struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_recipe;not null"`
	RecipeID  int  `gorm:"uniqueIndex:idx_user_recipe;not null"`
	Title     string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
