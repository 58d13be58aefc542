// auth_service.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shershunm/BibleStudy/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// LoginResult is the login response body.
type LoginResult struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
	Token   string    `json:"token"`
}

// LoginUser is the user summary embedded in LoginResult.
type LoginUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login checks the credentials and, on success, issues a session token with
// the given TTL. Passwords are compared as-is; hashing belongs to the
// identity provider this service will eventually sit behind.
func Login(db *gorm.DB, email, password string, ttl time.Duration) (*LoginResult, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &LoginResult{
		Success: true,
		User:    LoginUser{Email: user.Email, Name: user.Name},
		Token:   session.Token,
	}, nil
}

// Logout deletes the session for the given token. Unknown tokens are not an
// error; logout is idempotent.
func Logout(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// ValidateToken resolves a session token to the owning user id. Expired
// sessions are deleted on sight and reported as not found.
func ValidateToken(db *gorm.DB, token string) (uint64, error) {
	var session models.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	if time.Now().After(session.ExpiresAt) {
		db.Delete(&session)
		return 0, ErrSessionNotFound
	}
	return session.UserID, nil
}
