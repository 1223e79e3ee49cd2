package services

import (
	"errors"
	"fmt"

	"github.com/Subbu197328/nutri-app/config"
	"github.com/Subbu197328/nutri-app/models"
	"github.com/Subbu197328/nutri-app/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func RegisterUser(username, password string) error {
	user := models.User{
		Username: username,
		Password: utils.HashPassword(password),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// AuthenticateUser returns a signed JWT for username. Unknown user and
// wrong password collapse into the same error on purpose.
func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(username)
	if err != nil {
		return "", err
	}
	return token, nil
}
