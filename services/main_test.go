package services

import (
	"testing"
	"time"

	"freshtrack/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// polling bounds for asynchronous assertions
const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.ScannedProduct{},
		&models.SavedRecipe{},
		&models.MealPlan{},
		&models.Alert{},
		&models.UserDevice{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email, allergies string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "x", Name: "Test", Allergies: allergies}
	require.NoError(t, db.Create(u).Error)
	return u
}
