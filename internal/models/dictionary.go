package models

import "time"

// DictionaryEntry is a Strong's lexicon entry keyed by a language-prefixed
// code ("H7225", "G746"). Entries are created at seed time and only touched
// afterwards by the Ukrainian-definition backfill job.
type DictionaryEntry struct {
	ID                 uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Code               string `gorm:"uniqueIndex;size:16;not null" json:"code"`
	StrongsNumber      string `gorm:"size:8;not null;index" json:"strongsNumber"`
	Language           string `gorm:"size:8;not null" json:"language"` // hebrew | greek
	Headword           string `gorm:"size:255;not null" json:"headword"`
	Transliteration    string `gorm:"size:255" json:"transliteration"`
	Pronunciation      string `gorm:"size:255" json:"pronunciation"`
	Definition         string `gorm:"type:text" json:"definition"`
	DefinitionUkrainian string `gorm:"type:text" json:"definitionUkrainian,omitempty"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}
