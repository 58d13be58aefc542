package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// DictionaryHandler serves Strong's lexicon lookups.
type DictionaryHandler struct {
	DB *gorm.DB
}

// NewDictionaryHandler creates a new dictionary handler.
func NewDictionaryHandler(db *gorm.DB) *DictionaryHandler {
	return &DictionaryHandler{DB: db}
}

// GetEntry godoc
// @Summary Get a lexicon entry
// @Description Looks up a Strong's entry by code; bare numbers default to Hebrew
// @Tags dictionary
// @Produce json
// @Param code path string true "Strong's code (H7225, G746, or bare digits)"
// @Success 200 {object} models.DictionaryEntry
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dictionary/{code} [get]
func (h *DictionaryHandler) GetEntry(c *fiber.Ctx) error {
	entry, err := services.GetEntry(h.DB, c.Params("code"))
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return utils.NotFoundResponse(c, "Dictionary entry not found")
		}
		return utils.InternalErrorResponse(c, err, "Failed to fetch dictionary entry")
	}
	return c.JSON(entry)
}

// GetStrongs godoc
// @Summary Get a raw Strong's record
// @Tags dictionary
// @Produce json
// @Param number path string true "Strong's number"
// @Success 200 {object} models.DictionaryEntry
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /strongs/{number} [get]
func (h *DictionaryHandler) GetStrongs(c *fiber.Ctx) error {
	entry, err := services.GetByStrongsNumber(h.DB, c.Params("number"))
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return utils.NotFoundResponse(c, "Strong's entry not found")
		}
		return utils.InternalErrorResponse(c, err, "Failed to fetch Strong's entry")
	}
	return c.JSON(entry)
}
