// note_service.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package services

import (
	"errors"

	"github.com/shershunm/BibleStudy/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoteNotFound = errors.New("note not found")
)

// UpsertVerseNote writes the single note a user keeps on a verse. The write
// is a single ON CONFLICT statement against the (user_id, verse_id) unique
// index, so concurrent saves cannot create duplicate rows; the last write
// wins. Empty text deletes the note instead.
func UpsertVerseNote(db *gorm.DB, userID, verseID uint64, text string) (*models.VerseNote, error) {
	if text == "" {
		err := db.Where("user_id = ? AND verse_id = ?", userID, verseID).
			Delete(&models.VerseNote{}).Error
		if err != nil {
			return nil, err
		}
		return nil, nil
	}

	note := models.VerseNote{
		UserID:  userID,
		VerseID: verseID,
		Text:    text,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "verse_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(&note).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the surviving row (the conflict path does
	// not fill in the existing id).
	var saved models.VerseNote
	err = db.Where("user_id = ? AND verse_id = ?", userID, verseID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// CreateStudyNote adds a titled library note for the user.
func CreateStudyNote(db *gorm.DB, userID uint64, title, content string) (*models.StudyNote, error) {
	note := models.StudyNote{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateStudyNote updates a library note. The user filter makes missing and
// not-owned indistinguishable: both come back as ErrNoteNotFound.
func UpdateStudyNote(db *gorm.DB, userID, noteID uint64, title, content string) (*models.StudyNote, error) {
	var note models.StudyNote
	err := db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	note.Title = title
	note.Content = content
	if err := db.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteStudyNote removes a library note, with the same ownership rule as
// UpdateStudyNote.
func DeleteStudyNote(db *gorm.DB, userID, noteID uint64) error {
	result := db.Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.StudyNote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// SaveStudyPad replaces the user's free-text study pad.
func SaveStudyPad(db *gorm.DB, userID uint64, content string) error {
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("study_pad", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserData is the sync payload the client loads after login.
type UserData struct {
	Email      string             `json:"email"`
	Name       string             `json:"name"`
	StudyPad   string             `json:"studyPad"`
	Notes      []models.VerseNote `json:"notes"`
	StudyNotes []models.StudyNote `json:"studyNotes"`
}

// GetUserData returns everything a user owns: study pad, verse notes and
// library notes.
func GetUserData(db *gorm.DB, email string) (*UserData, error) {
	var user models.User
	err := db.Preload("VerseNotes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("verse_notes.updated_at DESC")
	}).Preload("StudyNotes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("study_notes.updated_at DESC")
	}).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	notes := user.VerseNotes
	if notes == nil {
		notes = []models.VerseNote{}
	}
	studyNotes := user.StudyNotes
	if studyNotes == nil {
		studyNotes = []models.StudyNote{}
	}
	return &UserData{
		Email:      user.Email,
		Name:       user.Name,
		StudyPad:   user.StudyPad,
		Notes:      notes,
		StudyNotes: studyNotes,
	}, nil
}
