package models

import (
	"time"
)

// BibleVersion represents one translation of Scripture (e.g. KJV, UBIO).
// HasStrongs marks translations whose verse text carries inline Strong's
// markers of the form <H1234> / <G1234>.
type BibleVersion struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string `gorm:"uniqueIndex;size:16;not null" json:"code"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Language   string `gorm:"size:8;not null" json:"language"`
	HasStrongs bool   `gorm:"not null;default:false" json:"hasStrongs"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	Books      []Book    `gorm:"constraint:OnDelete:CASCADE" json:"books,omitempty"`
}

// Book belongs to exactly one BibleVersion. Name is localized per version
// record (the UBIO Genesis row is named "Буття").
type Book struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BibleVersionID uint64 `gorm:"not null;index:idx_version_book,unique" json:"-"`
	Number         int    `gorm:"not null;index:idx_version_book,unique" json:"number"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Chapters       []Chapter `gorm:"constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
}

// Chapter belongs to one Book; number is unique within the book.
type Chapter struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID uint64 `gorm:"not null;index:idx_book_chapter,unique" json:"-"`
	Number int    `gorm:"not null;index:idx_book_chapter,unique" json:"number"`
	Verses []Verse `gorm:"constraint:OnDelete:CASCADE" json:"verses,omitempty"`
}

// Verse text may embed Strong's markers immediately after the annotated word:
// "In the beginning <H7225> God <H430> created".
type Verse struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ChapterID uint64 `gorm:"not null;index:idx_chapter_verse,unique" json:"-"`
	Number    int    `gorm:"not null;index:idx_chapter_verse,unique" json:"number"`
	Text      string `gorm:"type:text;not null" json:"text"`
}

// TableName overrides the table name for BibleVersion
func (BibleVersion) TableName() string {
	return "bible_versions"
}
