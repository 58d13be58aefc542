// bible_service.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package services

import (
	"errors"
	"fmt"

	"github.com/shershunm/BibleStudy/internal/models"
	"gorm.io/gorm"
)

var (
	ErrVersionNotFound = errors.New("version not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

// verseReference renders the human-readable citation used across search
// results and note listings, e.g. "Genesis 1:1" or "Буття 1:1".
func verseReference(bookName string, chapterNumber, verseNumber int) string {
	return fmt.Sprintf("%s %d:%d", bookName, chapterNumber, verseNumber)
}

// ListVersions returns all installed Bible versions.
func ListVersions(db *gorm.DB) ([]models.BibleVersion, error) {
	var versions []models.BibleVersion
	if err := db.Order("id").Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

// BookSummary is one book row in the books listing: the book plus the chapter
// numbers it contains, so the client can build its navigation tree without a
// second round trip.
type BookSummary struct {
	ID       uint64 `json:"id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Chapters []int  `json:"chapters"`
}

// GetBooks returns the books of a version with their chapter-number lists,
// ordered canonically.
func GetBooks(db *gorm.DB, versionCode string) ([]BookSummary, error) {
	var version models.BibleVersion
	if err := db.Where("code = ?", versionCode).First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, err
	}

	var books []models.Book
	err := db.Preload("Chapters", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("chapters.number")
	}).
		Where("bible_version_id = ?", version.ID).
		Order("number").
		Find(&books).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		chapters := make([]int, 0, len(b.Chapters))
		for _, ch := range b.Chapters {
			chapters = append(chapters, ch.Number)
		}
		summaries = append(summaries, BookSummary{
			ID:       b.ID,
			Number:   b.Number,
			Name:     b.Name,
			Chapters: chapters,
		})
	}
	return summaries, nil
}

// ChapterData is the chapter payload served to the reader view.
type ChapterData struct {
	BookName      string         `json:"bookName"`
	ChapterNumber int            `json:"chapterNumber"`
	Verses        []models.Verse `json:"verses"`
}

// GetChapter resolves version -> book -> chapter and returns the verses in
// order. Each missing level reports its own not-found error so the handler
// can say which part of the citation was wrong.
func GetChapter(db *gorm.DB, versionCode string, bookNumber, chapterNumber int) (*ChapterData, error) {
	var version models.BibleVersion
	if err := db.Where("code = ?", versionCode).First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, err
	}

	var book models.Book
	err := db.Where("bible_version_id = ? AND number = ?", version.ID, bookNumber).
		First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	var chapter models.Chapter
	err = db.Preload("Verses", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("verses.number")
	}).
		Where("book_id = ? AND number = ?", book.ID, chapterNumber).
		First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}

	verses := chapter.Verses
	if verses == nil {
		verses = []models.Verse{}
	}
	return &ChapterData{
		BookName:      book.Name,
		ChapterNumber: chapter.Number,
		Verses:        verses,
	}, nil
}
