// notes.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/middleware"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/types"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// NotesHandler handles verse notes and library notes. All routes sit behind
// the session middleware, so the acting user comes from locals, never from
// the body.
type NotesHandler struct {
	DB *gorm.DB
}

// NewNotesHandler creates a new notes handler.
func NewNotesHandler(db *gorm.DB) *NotesHandler {
	return &NotesHandler{DB: db}
}

// VerseNoteRequest is the verse-note upsert body. VerseID is flexible because
// the client sends it as a number from chapter payloads but as a string from
// form state.
type VerseNoteRequest struct {
	VerseID types.FlexUint64 `json:"verseId"`
	Text    string           `json:"text"`
}

// UpsertVerseNote godoc
// @Summary Save a verse note
// @Description Creates or replaces the user's note on a verse; empty text deletes it
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body VerseNoteRequest true "Verse id and text"
// @Success 200 {object} models.VerseNote
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /notes [post]
func (h *NotesHandler) UpsertVerseNote(c *fiber.Ctx) error {
	var req VerseNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.VerseID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "verseId is required")
	}

	note, err := services.UpsertVerseNote(h.DB, middleware.UserID(c), req.VerseID.Uint64(), req.Text)
	if err != nil {
		return utils.InternalErrorResponse(c, err, "Failed to save note")
	}
	if note == nil {
		return c.JSON(fiber.Map{"deleted": true})
	}
	return c.JSON(note)
}

// StudyNoteRequest is the library-note create/update body.
type StudyNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateStudyNote godoc
// @Summary Create a library note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body StudyNoteRequest true "Title and content"
// @Success 201 {object} models.StudyNote
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /notes/library [post]
func (h *NotesHandler) CreateStudyNote(c *fiber.Ctx) error {
	var req StudyNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	note, err := services.CreateStudyNote(h.DB, middleware.UserID(c), req.Title, req.Content)
	if err != nil {
		return utils.InternalErrorResponse(c, err, "Failed to create note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// UpdateStudyNote godoc
// @Summary Update a library note
// @Description Updates a note the user owns; anyone else's note reads as not found
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note id"
// @Param note body StudyNoteRequest true "Title and content"
// @Success 200 {object} models.StudyNote
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /notes/library/{id} [put]
func (h *NotesHandler) UpdateStudyNote(c *fiber.Ctx) error {
	noteID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.NotFoundResponse(c, "Note not found")
	}

	var req StudyNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	note, err := services.UpdateStudyNote(h.DB, middleware.UserID(c), noteID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return utils.NotFoundResponse(c, "Note not found")
		}
		return utils.InternalErrorResponse(c, err, "Failed to update note")
	}
	return c.JSON(note)
}

// DeleteStudyNote godoc
// @Summary Delete a library note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note id"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /notes/library/{id} [delete]
func (h *NotesHandler) DeleteStudyNote(c *fiber.Ctx) error {
	noteID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.NotFoundResponse(c, "Note not found")
	}

	if err := services.DeleteStudyNote(h.DB, middleware.UserID(c), noteID); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return utils.NotFoundResponse(c, "Note not found")
		}
		return utils.InternalErrorResponse(c, err, "Failed to delete note")
	}
	return c.JSON(fiber.Map{"success": true})
}
