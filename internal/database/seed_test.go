package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shershunm/BibleStudy/internal/database"
	"github.com/shershunm/BibleStudy/internal/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func countAll(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"versions":   &models.BibleVersion{},
		"books":      &models.Book{},
		"chapters":   &models.Chapter{},
		"verses":     &models.Verse{},
		"dictionary": &models.DictionaryEntry{},
		"locations":  &models.MapLocation{},
		"journeys":   &models.Journey{},
		"users":      &models.User{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("Count %s failed: %v", name, err)
		}
		counts[name] = n
	}
	return counts
}

func TestSeedLoadsFixtures(t *testing.T) {
	db := setupTestDB(t)

	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	counts := countAll(t, db)
	if counts["versions"] != 3 {
		t.Errorf("Expected 3 versions, got %d", counts["versions"])
	}
	if counts["dictionary"] == 0 || counts["locations"] == 0 || counts["journeys"] == 0 || counts["users"] == 0 {
		t.Errorf("Expected all fixture tables populated, got %v", counts)
	}

	// The tagged translation carries Strong's markers
	var version models.BibleVersion
	if err := db.Where("code = ?", "KJV-STR").First(&version).Error; err != nil {
		t.Fatalf("KJV-STR missing: %v", err)
	}
	if !version.HasStrongs {
		t.Error("Expected KJV-STR to have hasStrongs true")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := database.Seed(db); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	first := countAll(t, db)

	if err := database.Seed(db); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	second := countAll(t, db)

	for name, n := range first {
		if second[name] != n {
			t.Errorf("Second seed changed %s count: %d -> %d", name, n, second[name])
		}
	}
}
