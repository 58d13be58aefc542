package services_test

import (
	"errors"
	"testing"

	"github.com/shershunm/BibleStudy/internal/models"
	"github.com/shershunm/BibleStudy/internal/services"
)

func TestUpsertVerseNoteLastWriteWins(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	var verse models.Verse
	db.First(&verse)

	first, err := services.UpsertVerseNote(db, user.ID, verse.ID, "first draft")
	if err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	second, err := services.UpsertVerseNote(db, user.ID, verse.ID, "second draft")
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	if second.Text != "second draft" {
		t.Errorf("Expected 'second draft', got %q", second.Text)
	}
	if first.ID != second.ID {
		t.Errorf("Expected the same row to survive, got ids %d and %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.VerseNote{}).
		Where("user_id = ? AND verse_id = ?", user.ID, verse.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 row for the (user, verse) pair, got %d", count)
	}
}

func TestUpsertVerseNoteEmptyTextDeletes(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	var verse models.Verse
	db.First(&verse)

	if _, err := services.UpsertVerseNote(db, user.ID, verse.ID, "keep me"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	note, err := services.UpsertVerseNote(db, user.ID, verse.ID, "")
	if err != nil {
		t.Fatalf("Empty-text upsert failed: %v", err)
	}
	if note != nil {
		t.Errorf("Expected nil note after delete, got %+v", note)
	}

	var count int64
	db.Model(&models.VerseNote{}).
		Where("user_id = ? AND verse_id = ?", user.ID, verse.ID).
		Count(&count)
	if count != 0 {
		t.Errorf("Expected note deleted, found %d rows", count)
	}
}

func TestStudyNoteOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := seedSearchData(t, db)

	other := models.User{Email: "other@example.com", Name: "Other", Password: "pw"}
	db.Create(&other)

	note, err := services.CreateStudyNote(db, owner.ID, "Private", "<p>mine</p>")
	if err != nil {
		t.Fatalf("CreateStudyNote failed: %v", err)
	}

	_, err = services.UpdateStudyNote(db, other.ID, note.ID, "Stolen", "<p>taken</p>")
	if !errors.Is(err, services.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound for foreign update, got %v", err)
	}

	err = services.DeleteStudyNote(db, other.ID, note.ID)
	if !errors.Is(err, services.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound for foreign delete, got %v", err)
	}

	// The owner still succeeds
	updated, err := services.UpdateStudyNote(db, owner.ID, note.ID, "Renamed", "<p>mine</p>")
	if err != nil {
		t.Fatalf("Owner update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("Expected title 'Renamed', got %q", updated.Title)
	}
	if err := services.DeleteStudyNote(db, owner.ID, note.ID); err != nil {
		t.Errorf("Owner delete failed: %v", err)
	}
}

func TestDeleteMissingStudyNote(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	err := services.DeleteStudyNote(db, user.ID, 9999)
	if !errors.Is(err, services.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound, got %v", err)
	}
}

func TestSaveStudyPadAndGetUserData(t *testing.T) {
	db := setupTestDB(t)
	user := seedSearchData(t, db)

	if err := services.SaveStudyPad(db, user.ID, "my scratch notes"); err != nil {
		t.Fatalf("SaveStudyPad failed: %v", err)
	}

	data, err := services.GetUserData(db, user.Email)
	if err != nil {
		t.Fatalf("GetUserData failed: %v", err)
	}
	if data.StudyPad != "my scratch notes" {
		t.Errorf("Expected saved study pad, got %q", data.StudyPad)
	}
	if len(data.Notes) != 1 {
		t.Errorf("Expected 1 verse note, got %d", len(data.Notes))
	}
	if len(data.StudyNotes) != 1 {
		t.Errorf("Expected 1 study note, got %d", len(data.StudyNotes))
	}
}

func TestGetUserDataUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	seedSearchData(t, db)

	_, err := services.GetUserData(db, "nobody@example.com")
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
