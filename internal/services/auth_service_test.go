package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shershunm/BibleStudy/internal/models"
	"github.com/shershunm/BibleStudy/internal/services"
)

func TestLoginIssuesSession(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	result, err := services.Login(db, user.Email, "pw", time.Hour)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !result.Success {
		t.Error("Expected success true")
	}
	if result.User.Email != user.Email || result.User.Name != user.Name {
		t.Errorf("Unexpected user summary: %+v", result.User)
	}
	if result.Token == "" {
		t.Fatal("Expected a session token")
	}

	userID, err := services.ValidateToken(db, result.Token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if userID != user.ID {
		t.Errorf("Expected user id %d, got %d", user.ID, userID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	_, err := services.Login(db, user.Email, "wrong", time.Hour)
	if !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	_, err = services.Login(db, "nobody@example.com", "pw", time.Hour)
	if !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestValidateTokenExpiry(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	session := models.Session{
		Token:     "00000000-0000-0000-0000-000000000001",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	db.Create(&session)

	_, err := services.ValidateToken(db, session.Token)
	if !errors.Is(err, services.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound for expired token, got %v", err)
	}

	// The expired session row is reaped
	var count int64
	db.Model(&models.Session{}).Where("token = ?", session.Token).Count(&count)
	if count != 0 {
		t.Error("Expected expired session to be deleted")
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	result, err := services.Login(db, user.Email, "pw", time.Hour)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := services.Logout(db, result.Token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := services.ValidateToken(db, result.Token); !errors.Is(err, services.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after logout, got %v", err)
	}

	// Logout is idempotent
	if err := services.Logout(db, result.Token); err != nil {
		t.Errorf("Repeated logout must not fail, got %v", err)
	}
}
