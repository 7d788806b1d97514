package services

import (
	"errors"
	"time"

	"freshtrack/models"
	"freshtrack/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db     *gorm.DB
	secret string
	mailer *utils.Mailer
}

func NewAuthService(db *gorm.DB, jwtSecret string, mailer *utils.Mailer) *AuthService {
	return &AuthService{db: db, secret: jwtSecret, mailer: mailer}
}

func (s *AuthService) Register(email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
		Disabled: false,
	}
	return s.db.Create(&user).Error
}

// Authenticate checks credentials and mints a 72h bearer token.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(s.secret, user.Email, user.ID)
}

func (s *AuthService) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// SendPasswordReset stores a short-lived reset code and emails it.
// Unknown emails return nil so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *AuthService) SendPasswordReset(email string) error {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(user).Error; err != nil {
		return err
	}

	if s.mailer != nil {
		return s.mailer.SendResetEmail(user.Email, token)
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	err := s.db.Where("reset_token = ?", token).First(&user).Error
	if err != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}

// UpdatePassword requires the current password (reauthentication).
func (s *AuthService) UpdatePassword(email, currentPassword, newPassword string) error {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.db.Save(user).Error
}

// DeleteAccount reauthenticates, then disables the account. Rows are
// kept; a disabled user can no longer sign in.
func (s *AuthService) DeleteAccount(email, password string) error {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return ErrInvalidCredentials
	}
	user.Disabled = true
	return s.db.Save(user).Error
}
