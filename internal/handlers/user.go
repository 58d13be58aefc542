package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/middleware"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// UserHandler serves the user sync payload and study pad writes.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new user handler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetUserData godoc
// @Summary Get a user's data
// @Description Returns the study pad, verse notes and library notes for the sync flow
// @Tags user
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} services.UserData
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/{email} [get]
func (h *UserHandler) GetUserData(c *fiber.Ctx) error {
	data, err := services.GetUserData(h.DB, c.Params("email"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalErrorResponse(c, err, "Failed to fetch user data")
	}
	return c.JSON(data)
}

// StudyPadRequest is the study pad save body.
type StudyPadRequest struct {
	Content string `json:"content"`
}

// SaveStudyPad godoc
// @Summary Save the study pad
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pad body StudyPadRequest true "Study pad content"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/studypad [post]
func (h *UserHandler) SaveStudyPad(c *fiber.Ctx) error {
	var req StudyPadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := services.SaveStudyPad(h.DB, middleware.UserID(c), req.Content); err != nil {
		return utils.InternalErrorResponse(c, err, "Failed to save study pad")
	}
	return c.JSON(fiber.Map{"success": true})
}
