// bible.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// BibleHandler serves Scripture reads.
type BibleHandler struct {
	DB *gorm.DB
}

// NewBibleHandler creates a new bible handler.
func NewBibleHandler(db *gorm.DB) *BibleHandler {
	return &BibleHandler{DB: db}
}

// GetVersions godoc
// @Summary List Bible versions
// @Tags bible
// @Produce json
// @Success 200 {array} models.BibleVersion
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /bible/versions [get]
func (h *BibleHandler) GetVersions(c *fiber.Ctx) error {
	versions, err := services.ListVersions(h.DB)
	if err != nil {
		return utils.InternalErrorResponse(c, err, "Failed to fetch versions")
	}
	return c.JSON(versions)
}

// GetBooks godoc
// @Summary List books of a version
// @Description Returns the books of a version with their chapter numbers
// @Tags bible
// @Produce json
// @Param versionCode path string true "Version code (e.g. KJV)"
// @Success 200 {array} services.BookSummary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /bible/books/{versionCode} [get]
func (h *BibleHandler) GetBooks(c *fiber.Ctx) error {
	books, err := services.GetBooks(h.DB, c.Params("versionCode"))
	if err != nil {
		if errors.Is(err, services.ErrVersionNotFound) {
			return utils.NotFoundResponse(c, "Version not found")
		}
		return utils.InternalErrorResponse(c, err, "Failed to fetch books")
	}
	return c.JSON(books)
}

// GetChapter godoc
// @Summary Get a chapter
// @Description Returns a chapter's verses in order
// @Tags bible
// @Produce json
// @Param versionCode path string true "Version code"
// @Param bookNumber path int true "Book number"
// @Param chapterNumber path int true "Chapter number"
// @Success 200 {object} services.ChapterData
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /bible/chapter/{versionCode}/{bookNumber}/{chapterNumber} [get]
func (h *BibleHandler) GetChapter(c *fiber.Ctx) error {
	bookNumber, err := strconv.Atoi(c.Params("bookNumber"))
	if err != nil {
		return utils.NotFoundResponse(c, "Book not found")
	}
	chapterNumber, err := strconv.Atoi(c.Params("chapterNumber"))
	if err != nil {
		return utils.NotFoundResponse(c, "Chapter not found")
	}

	chapter, err := services.GetChapter(h.DB, c.Params("versionCode"), bookNumber, chapterNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVersionNotFound):
			return utils.NotFoundResponse(c, "Version not found")
		case errors.Is(err, services.ErrBookNotFound):
			return utils.NotFoundResponse(c, "Book not found")
		case errors.Is(err, services.ErrChapterNotFound):
			return utils.NotFoundResponse(c, "Chapter not found")
		default:
			return utils.InternalErrorResponse(c, err, "Failed to fetch chapter")
		}
	}
	return c.JSON(chapter)
}
