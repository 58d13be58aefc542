// search_service.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shershunm/BibleStudy/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const (
	bibleResultLimit      = 10
	dictionaryResultLimit = 5
	mapResultLimit        = 5
	noteResultLimit       = 5

	definitionSnippetRunes = 100
	previewSnippetRunes    = 50
)

// stripTags removes all HTML from rich-text note content before it is cut
// into a preview snippet.
var stripTags = bluemonday.StrictPolicy()

// VerseResult is one verse hit in the bible category.
type VerseResult struct {
	Type          string `json:"type"`
	ID            uint64 `json:"id"`
	Text          string `json:"text"`
	Reference     string `json:"reference"`
	Version       string `json:"version"`
	BookNumber    int    `json:"bookNumber"`
	ChapterNumber int    `json:"chapterNumber"`
	VerseNumber   int    `json:"verseNumber"`
}

// DictionaryResult is one lexicon hit. Definition is a truncated snippet,
// not the full entry.
type DictionaryResult struct {
	Type       string `json:"type"`
	ID         uint64 `json:"id"`
	Code       string `json:"code"`
	Headword   string `json:"headword"`
	Definition string `json:"definition"`
}

// MapResult is one map-location hit.
type MapResult struct {
	Type        string `json:"type"`
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NoteResult covers both note kinds. Verse notes carry text and a verse
// reference; study notes carry a title. Both carry a preview snippet.
type NoteResult struct {
	Type          string `json:"type"`
	ID            uint64 `json:"id"`
	Text          string `json:"text,omitempty"`
	Reference     string `json:"reference,omitempty"`
	BookNumber    int    `json:"bookNumber,omitempty"`
	ChapterNumber int    `json:"chapterNumber,omitempty"`
	VerseNumber   int    `json:"verseNumber,omitempty"`
	Title         string `json:"title,omitempty"`
	Preview       string `json:"preview"`
}

// SearchResults is the response envelope. All four keys are always present
// and non-nil, whatever the scope; the client iterates them unconditionally.
type SearchResults struct {
	Bible      []VerseResult      `json:"bible"`
	Dictionary []DictionaryResult `json:"dictionary"`
	Maps       []MapResult        `json:"maps"`
	Notes      []NoteResult       `json:"notes"`
}

func emptyResults() *SearchResults {
	return &SearchResults{
		Bible:      []VerseResult{},
		Dictionary: []DictionaryResult{},
		Maps:       []MapResult{},
		Notes:      []NoteResult{},
	}
}

// scopeWants reports whether the given category runs for the requested scope.
// An unrecognized scope behaves like "all", matching the original backend.
func scopeWants(scope, category string) bool {
	switch scope {
	case "bible", "dictionary", "maps", "notes":
		return scope == category
	default:
		return true
	}
}

// truncateRunes cuts s to at most n runes, appending "..." when anything was
// cut. Counting runes keeps Ukrainian text from being split mid-character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// Search runs the cross-entity search and returns the four-category envelope.
// Queries shorter than two runes return an empty envelope without touching
// the database. Categories run concurrently; the first store error aborts the
// whole search.
func Search(ctx context.Context, db *gorm.DB, query, scope, email string) (*SearchResults, error) {
	results := emptyResults()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return results, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	g, gctx := errgroup.WithContext(ctx)

	if scopeWants(scope, "bible") {
		g.Go(func() error {
			hits, err := searchVerses(db.WithContext(gctx), pattern)
			if err != nil {
				return err
			}
			results.Bible = hits
			return nil
		})
	}

	if scopeWants(scope, "dictionary") {
		g.Go(func() error {
			hits, err := searchDictionary(db.WithContext(gctx), pattern)
			if err != nil {
				return err
			}
			results.Dictionary = hits
			return nil
		})
	}

	if scopeWants(scope, "maps") {
		g.Go(func() error {
			hits, err := searchMaps(db.WithContext(gctx), pattern)
			if err != nil {
				return err
			}
			results.Maps = hits
			return nil
		})
	}

	if scopeWants(scope, "notes") && email != "" {
		g.Go(func() error {
			hits, err := searchNotes(db.WithContext(gctx), pattern, email)
			if err != nil {
				return err
			}
			results.Notes = hits
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type verseRow struct {
	ID            uint64
	Text          string
	VerseNumber   int
	ChapterNumber int
	BookNumber    int
	BookName      string
	VersionCode   string
}

func searchVerses(db *gorm.DB, pattern string) ([]VerseResult, error) {
	var rows []verseRow
	err := db.Clauses(hints.CommentBefore("select", "search:bible")).
		Table("verses").
		Select("verses.id, verses.text, verses.number AS verse_number, " +
			"chapters.number AS chapter_number, books.number AS book_number, " +
			"books.name AS book_name, bible_versions.code AS version_code").
		Joins("JOIN chapters ON chapters.id = verses.chapter_id").
		Joins("JOIN books ON books.id = chapters.book_id").
		Joins("JOIN bible_versions ON bible_versions.id = books.bible_version_id").
		Where("LOWER(verses.text) LIKE ?", pattern).
		Order("books.number, chapters.number, verses.number").
		Limit(bibleResultLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	hits := make([]VerseResult, 0, len(rows))
	for _, r := range rows {
		hits = append(hits, VerseResult{
			Type:          "verse",
			ID:            r.ID,
			Text:          r.Text,
			Reference:     verseReference(r.BookName, r.ChapterNumber, r.VerseNumber),
			Version:       r.VersionCode,
			BookNumber:    r.BookNumber,
			ChapterNumber: r.ChapterNumber,
			VerseNumber:   r.VerseNumber,
		})
	}
	return hits, nil
}

func searchDictionary(db *gorm.DB, pattern string) ([]DictionaryResult, error) {
	var entries []models.DictionaryEntry
	err := db.Clauses(hints.CommentBefore("select", "search:dictionary")).
		Where("LOWER(headword) LIKE ? OR LOWER(transliteration) LIKE ? OR LOWER(definition) LIKE ? OR LOWER(code) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("code").
		Limit(dictionaryResultLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	hits := make([]DictionaryResult, 0, len(entries))
	for _, e := range entries {
		hits = append(hits, DictionaryResult{
			Type:       "dictionary",
			ID:         e.ID,
			Code:       e.Code,
			Headword:   e.Headword,
			Definition: truncateRunes(e.Definition, definitionSnippetRunes),
		})
	}
	return hits, nil
}

func searchMaps(db *gorm.DB, pattern string) ([]MapResult, error) {
	var locations []models.MapLocation
	err := db.Clauses(hints.CommentBefore("select", "search:maps")).
		Where("LOWER(name) LIKE ? OR LOWER(name_ukrainian) LIKE ? OR LOWER(description) LIKE ? OR LOWER(description_ukrainian) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("name").
		Limit(mapResultLimit).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}

	hits := make([]MapResult, 0, len(locations))
	for _, l := range locations {
		hits = append(hits, MapResult{
			Type:        "map",
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
		})
	}
	return hits, nil
}

type verseNoteRow struct {
	ID            uint64
	Text          string
	VerseNumber   int
	ChapterNumber int
	BookNumber    int
	BookName      string
}

// searchNotes matches both note kinds for the user resolved from email. An
// unknown email is not an error; the category just comes back empty.
func searchNotes(db *gorm.DB, pattern, email string) ([]NoteResult, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []NoteResult{}, nil
		}
		return nil, err
	}

	var verseRows []verseNoteRow
	err := db.Clauses(hints.CommentBefore("select", "search:verse_notes")).
		Table("verse_notes").
		Select("verse_notes.id, verse_notes.text, verses.number AS verse_number, " +
			"chapters.number AS chapter_number, books.number AS book_number, " +
			"books.name AS book_name").
		Joins("JOIN verses ON verses.id = verse_notes.verse_id").
		Joins("JOIN chapters ON chapters.id = verses.chapter_id").
		Joins("JOIN books ON books.id = chapters.book_id").
		Where("verse_notes.user_id = ? AND LOWER(verse_notes.text) LIKE ?", user.ID, pattern).
		Order("verse_notes.updated_at DESC").
		Limit(noteResultLimit).
		Scan(&verseRows).Error
	if err != nil {
		return nil, err
	}

	var studyNotes []models.StudyNote
	err = db.Clauses(hints.CommentBefore("select", "search:study_notes")).
		Where("user_id = ? AND (LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", user.ID, pattern, pattern).
		Order("updated_at DESC").
		Limit(noteResultLimit).
		Find(&studyNotes).Error
	if err != nil {
		return nil, err
	}

	hits := make([]NoteResult, 0, len(verseRows)+len(studyNotes))
	for _, r := range verseRows {
		hits = append(hits, NoteResult{
			Type:          "verse_note",
			ID:            r.ID,
			Text:          r.Text,
			Reference:     verseReference(r.BookName, r.ChapterNumber, r.VerseNumber),
			BookNumber:    r.BookNumber,
			ChapterNumber: r.ChapterNumber,
			VerseNumber:   r.VerseNumber,
			Preview:       truncateRunes(r.Text, previewSnippetRunes),
		})
	}
	for _, n := range studyNotes {
		plain := strings.TrimSpace(stripTags.Sanitize(n.Content))
		hits = append(hits, NoteResult{
			Type:    "study_note",
			ID:      n.ID,
			Title:   n.Title,
			Preview: truncateRunes(plain, previewSnippetRunes),
		})
	}
	return hits, nil
}
