// auth.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	DB         *gorm.DB
	SessionTTL time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(db *gorm.DB, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{DB: db, SessionTTL: sessionTTL}
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginFailure is the body returned when credentials are rejected.
type LoginFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login godoc
// @Summary Log in
// @Description Checks credentials and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} services.LoginResult
// @Failure 401 {object} LoginFailure
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(LoginFailure{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	result, err := services.Login(h.DB, req.Email, req.Password, h.SessionTTL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(LoginFailure{
				Success: false,
				Message: "Invalid email or password",
			})
		}
		return utils.InternalErrorResponse(c, err, "Login failed")
	}
	return c.JSON(result)
}

// Logout godoc
// @Summary Log out
// @Description Deletes the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("sessionToken").(string)
	if err := services.Logout(h.DB, token); err != nil {
		return utils.InternalErrorResponse(c, err, "Logout failed")
	}
	return c.JSON(fiber.Map{"success": true})
}
