package services

import (
	"errors"
	"fmt"

	"freshtrack/models"
	"freshtrack/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Name           string `json:"name"`
	Allergies      string `json:"allergies"` // comma-separated
	ProfilePicture string `json:"profile_picture"` // base64 data URI
}

type UserService struct {
	db       *gorm.DB
	uploader *utils.S3Uploader
}

func NewUserService(db *gorm.DB, uploader *utils.S3Uploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

func (s *UserService) GetProfile(email string) (map[string]interface{}, error) {
	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"allergies":       user.Allergies,
		"allergy_list":    utils.ParseAllergyList(user.Allergies),
		"profile_picture": user.ProfilePicture,
	}, nil
}

// UpdateProfile merges: empty fields leave stored values untouched.
// Email is immutable once set at sign-up.
func (s *UserService) UpdateProfile(email string, input ProfileInput) error {
	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		return errors.New("user not found or disabled")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Allergies != "" {
		user.Allergies = input.Allergies
	}
	if input.ProfilePicture != "" {
		if s.uploader == nil {
			return fmt.Errorf("image upload not configured")
		}
		url, err := s.uploader.UploadBase64Image(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}

	return s.db.Save(&user).Error
}
