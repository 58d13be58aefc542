package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// SearchHandler serves the cross-entity search.
type SearchHandler struct {
	DB *gorm.DB
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{DB: db}
}

// Search godoc
// @Summary Search verses, lexicon, maps and notes
// @Description Runs the four search categories concurrently and returns the combined envelope
// @Tags search
// @Produce json
// @Param q query string true "Search query (min 2 characters)"
// @Param scope query string false "all | bible | dictionary | maps | notes" default(all)
// @Param email query string false "Email of the user whose notes to search"
// @Success 200 {object} services.SearchResults
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	results, err := services.Search(
		c.Context(),
		h.DB,
		c.Query("q"),
		c.Query("scope", "all"),
		c.Query("email"),
	)
	if err != nil {
		return utils.InternalErrorResponse(c, err, "Search failed")
	}
	return c.JSON(results)
}
