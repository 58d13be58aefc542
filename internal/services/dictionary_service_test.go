package services_test

import (
	"errors"
	"testing"

	"github.com/shershunm/BibleStudy/internal/services"
)

func TestGetEntryNormalizesCode(t *testing.T) {
	db := setupTestDB(t)
	seedSearchData(t, db)

	// Exact, lowercase and bare-digit (Hebrew default) lookups all resolve
	for _, code := range []string{"H430", "h430", "430", " H430 "} {
		entry, err := services.GetEntry(db, code)
		if err != nil {
			t.Errorf("GetEntry(%q) failed: %v", code, err)
			continue
		}
		if entry.Code != "H430" {
			t.Errorf("GetEntry(%q): expected H430, got %q", code, entry.Code)
		}
	}
}

func TestGetEntryNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedSearchData(t, db)

	for _, code := range []string{"H9999", "G430", "bogus", ""} {
		_, err := services.GetEntry(db, code)
		if !errors.Is(err, services.ErrEntryNotFound) {
			t.Errorf("GetEntry(%q): expected ErrEntryNotFound, got %v", code, err)
		}
	}
}

func TestGetByStrongsNumber(t *testing.T) {
	db := setupTestDB(t)
	seedSearchData(t, db)

	entry, err := services.GetByStrongsNumber(db, "430")
	if err != nil {
		t.Fatalf("GetByStrongsNumber failed: %v", err)
	}
	if entry.StrongsNumber != "430" {
		t.Errorf("Expected Strong's number 430, got %q", entry.StrongsNumber)
	}
}
