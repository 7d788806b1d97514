package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freshtrack/models"

	"gorm.io/gorm"
)

// PlannerService owns saved recipes and the date-keyed meal calendar.
type PlannerService struct {
	db  *gorm.DB
	hub Notifier
}

func NewPlannerService(db *gorm.DB, hub Notifier) *PlannerService {
	return &PlannerService{db: db, hub: hub}
}

// SaveRecipe upserts by (user, recipe id). Merge semantics: an empty
// incoming title or image leaves the stored value untouched, so
// re-saving the same suggestion is a pure no-op.
func (s *PlannerService) SaveRecipe(userID uint, recipeID int, title, image string) (*models.SavedRecipe, error) {
	if recipeID <= 0 {
		return nil, fmt.Errorf("recipe id is required")
	}

	var rec models.SavedRecipe
	err := s.db.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.SavedRecipe{UserID: userID, RecipeID: recipeID, Title: title, Image: image}
		if err := s.db.Create(&rec).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	}
	if err != nil {
		return nil, err
	}

	if title != "" {
		rec.Title = title
	}
	if image != "" {
		rec.Image = image
	}
	if err := s.db.Save(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PlannerService) ListSaved(userID uint) ([]models.SavedRecipe, error) {
	var recs []models.SavedRecipe
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (s *PlannerService) DeleteSaved(userID uint, recipeID int) error {
	return s.db.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.SavedRecipe{}).Error
}

func normalizeDate(date string) (string, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return d.Format("2006-01-02"), nil
}

// AssignToDate adds a recipe title to a day's meal set. The day row is
// created on first assignment; assigning a title already present is a
// no-op union.
func (s *PlannerService) AssignToDate(userID uint, date, title string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("recipe title is required")
	}

	var plan models.MealPlan
	err = s.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		plan = models.MealPlan{UserID: userID, Date: date, Meals: toJSONArray([]string{title})}
		if err := s.db.Create(&plan).Error; err != nil {
			return err
		}
		s.notifyCalendar(userID)
		return nil
	}
	if err != nil {
		return err
	}

	meals := FromJSONArray(plan.Meals)
	for _, m := range meals {
		if m == title {
			return nil
		}
	}
	plan.Meals = toJSONArray(append(meals, title))
	if err := s.db.Save(&plan).Error; err != nil {
		return err
	}
	s.notifyCalendar(userID)
	return nil
}

// RemoveFromDate removes a title from a day's meal set; absent titles
// and absent days are no-ops. A day whose set empties is deleted.
func (s *PlannerService) RemoveFromDate(userID uint, date, title string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}

	var plan models.MealPlan
	err = s.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	meals := FromJSONArray(plan.Meals)
	kept := make([]string, 0, len(meals))
	for _, m := range meals {
		if m != title {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return nil
	}

	if len(kept) == 0 {
		if err := s.db.Delete(&plan).Error; err != nil {
			return err
		}
	} else {
		plan.Meals = toJSONArray(kept)
		if err := s.db.Save(&plan).Error; err != nil {
			return err
		}
	}
	s.notifyCalendar(userID)
	return nil
}

// MoveAssignment is remove-from-old plus add-to-new, best effort: if
// the add fails after the remove succeeded the removal is not rolled
// back. The calendar is a convenience view and a half-applied move is
// visible and repairable in the UI.
func (s *PlannerService) MoveAssignment(userID uint, fromDate, toDate, title string) error {
	if err := s.RemoveFromDate(userID, fromDate, title); err != nil {
		return err
	}
	return s.AssignToDate(userID, toDate, title)
}

// MealsOn returns the titles assigned to one day; empty slice when none.
func (s *PlannerService) MealsOn(userID uint, date string) ([]string, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	var plan models.MealPlan
	err = s.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	meals := FromJSONArray(plan.Meals)
	if meals == nil {
		meals = []string{}
	}
	return meals, nil
}

// Calendar returns the full date → meals map for the user.
func (s *PlannerService) Calendar(userID uint) (map[string][]string, error) {
	var plans []models.MealPlan
	err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(plans))
	for _, p := range plans {
		out[p.Date] = FromJSONArray(p.Meals)
	}
	return out, nil
}

func (s *PlannerService) notifyCalendar(userID uint) {
	if s.hub == nil {
		return
	}
	cal, err := s.Calendar(userID)
	if err != nil {
		return
	}
	s.hub.Broadcast(userID, "calendar.updated", cal)
}
