package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	Name           string
	Allergies      string // comma-separated, e.g. "peanuts, dairy"
	ProfilePicture string
	Disabled       bool
	ResetToken     string
	ResetTokenExp  time.Time
}
