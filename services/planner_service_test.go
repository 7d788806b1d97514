package services

import (
	"testing"

	"freshtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRecipeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	first, err := p.SaveRecipe(u.ID, 42, "Tacos", "tacos.jpg")
	require.NoError(t, err)
	second, err := p.SaveRecipe(u.ID, 42, "Tacos", "tacos.jpg")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	recs, err := p.ListSaved(u.ID)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestSaveRecipeMergeKeepsStoredFields(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	_, err := p.SaveRecipe(u.ID, 42, "Tacos", "tacos.jpg")
	require.NoError(t, err)

	// a later save without title or image must not blank them
	rec, err := p.SaveRecipe(u.ID, 42, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Tacos", rec.Title)
	assert.Equal(t, "tacos.jpg", rec.Image)

	rec, err = p.SaveRecipe(u.ID, 42, "Street Tacos", "")
	require.NoError(t, err)
	assert.Equal(t, "Street Tacos", rec.Title)
	assert.Equal(t, "tacos.jpg", rec.Image)
}

func TestSaveRecipeRequiresID(t *testing.T) {
	db := newTestDB(t)
	p := NewPlannerService(db, nil)
	_, err := p.SaveRecipe(1, 0, "Tacos", "")
	assert.Error(t, err)
}

func TestDeleteSavedThenResave(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	_, err := p.SaveRecipe(u.ID, 42, "Tacos", "")
	require.NoError(t, err)
	require.NoError(t, p.DeleteSaved(u.ID, 42))

	recs, _ := p.ListSaved(u.ID)
	assert.Empty(t, recs)

	// the unique (user, recipe) index must not block re-saving
	_, err = p.SaveRecipe(u.ID, 42, "Tacos", "")
	require.NoError(t, err)
}

func TestAssignToDateUnionSemantics(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Tacos"))
	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Rice Bowl"))
	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Tacos")) // duplicate

	meals, err := p.MealsOn(u.ID, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tacos", "Rice Bowl"}, meals)
}

func TestAssignRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	p := NewPlannerService(db, nil)

	assert.Error(t, p.AssignToDate(1, "09/01/2026", "Tacos"))
	assert.Error(t, p.AssignToDate(1, "2026-09-01", "  "))
}

func TestRemoveFromDateDeletesEmptiedDay(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Tacos"))
	require.NoError(t, p.RemoveFromDate(u.ID, "2026-09-01", "Tacos"))

	var count int64
	db.Model(&models.MealPlan{}).Where("user_id = ?", u.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// and the day can be recreated afterwards
	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Rice Bowl"))
	meals, _ := p.MealsOn(u.ID, "2026-09-01")
	assert.Equal(t, []string{"Rice Bowl"}, meals)
}

func TestRemoveFromDateAbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	hub := &recordingNotifier{}
	p := NewPlannerService(db, hub)

	require.NoError(t, p.RemoveFromDate(u.ID, "2026-09-01", "Tacos"))

	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Tacos"))
	before := len(hub.kinds())
	require.NoError(t, p.RemoveFromDate(u.ID, "2026-09-01", "Rice Bowl"))
	assert.Len(t, hub.kinds(), before)

	meals, _ := p.MealsOn(u.ID, "2026-09-01")
	assert.Equal(t, []string{"Tacos"}, meals)
}

func TestMoveAssignment(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Tacos"))
	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Rice Bowl"))

	require.NoError(t, p.MoveAssignment(u.ID, "2026-09-01", "2026-09-02", "Tacos"))

	from, _ := p.MealsOn(u.ID, "2026-09-01")
	to, _ := p.MealsOn(u.ID, "2026-09-02")
	assert.Equal(t, []string{"Rice Bowl"}, from)
	assert.Equal(t, []string{"Tacos"}, to)
}

func TestMoveAssignmentFromAbsentDayStillAssigns(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	p := NewPlannerService(db, nil)

	require.NoError(t, p.MoveAssignment(u.ID, "2026-09-01", "2026-09-02", "Tacos"))

	to, _ := p.MealsOn(u.ID, "2026-09-02")
	assert.Equal(t, []string{"Tacos"}, to)
}

func TestCalendarMap(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "")
	other := newTestUser(t, db, "b@example.com", "")
	p := NewPlannerService(db, nil)

	require.NoError(t, p.AssignToDate(u.ID, "2026-09-01", "Tacos"))
	require.NoError(t, p.AssignToDate(u.ID, "2026-09-03", "Soup"))
	require.NoError(t, p.AssignToDate(other.ID, "2026-09-01", "Salad"))

	cal, err := p.Calendar(u.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"2026-09-01": {"Tacos"},
		"2026-09-03": {"Soup"},
	}, cal)
}
