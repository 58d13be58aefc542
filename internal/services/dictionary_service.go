package services

import (
	"errors"

	"github.com/shershunm/BibleStudy/internal/models"
	"github.com/shershunm/BibleStudy/internal/strongs"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("dictionary entry not found")

// GetEntry looks up a lexicon entry by Strong's code. Lowercase codes and
// bare digits are accepted; bare digits default to the Hebrew ("H") prefix,
// matching what the study panel sends.
func GetEntry(db *gorm.DB, code string) (*models.DictionaryEntry, error) {
	normalized := strongs.NormalizeCode(code)
	if !strongs.IsCode(normalized) {
		return nil, ErrEntryNotFound
	}

	var entry models.DictionaryEntry
	if err := db.Where("code = ?", normalized).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetByStrongsNumber serves the raw /api/strongs/:number lookup. The number
// may arrive prefixed ("G746") or bare ("7225"); bare numbers get the "H"
// default like GetEntry.
func GetByStrongsNumber(db *gorm.DB, number string) (*models.DictionaryEntry, error) {
	return GetEntry(db, number)
}
