package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// MapsHandler serves biblical-geography data.
type MapsHandler struct {
	DB *gorm.DB
}

// NewMapsHandler creates a new maps handler.
func NewMapsHandler(db *gorm.DB) *MapsHandler {
	return &MapsHandler{DB: db}
}

// GetLocations godoc
// @Summary List map locations
// @Tags maps
// @Produce json
// @Success 200 {array} models.MapLocation
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maps/locations [get]
func (h *MapsHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := services.ListLocations(h.DB)
	if err != nil {
		return utils.InternalErrorResponse(c, err, "Failed to fetch locations")
	}
	return c.JSON(locations)
}

// GetJourneys godoc
// @Summary List journeys
// @Tags maps
// @Produce json
// @Success 200 {array} models.Journey
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maps/journeys [get]
func (h *MapsHandler) GetJourneys(c *fiber.Ctx) error {
	journeys, err := services.ListJourneys(h.DB)
	if err != nil {
		return utils.InternalErrorResponse(c, err, "Failed to fetch journeys")
	}
	return c.JSON(journeys)
}
