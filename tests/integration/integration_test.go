// Integration test against a real MariaDB started via testcontainers.
// Skipped in -short mode and wherever Docker is unavailable.

package integration_test

import (
	"context"
	"testing"

	"github.com/shershunm/BibleStudy/internal/config"
	"github.com/shershunm/BibleStudy/internal/database"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/tests/helpers"
)

func TestMariaDBRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to create test containers: %v", err)
	}
	defer tc.Terminate(t)

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            tc.Host,
		DBPort:            tc.MappedPort.Port(),
		DBDatabase:        "bible_study",
		DBUser:            "bible",
		DBPassword:        "bible",
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	// Seeded data is readable through the services
	versions, err := services.ListVersions(db)
	if err != nil {
		t.Fatalf("ListVersions failed: %v", err)
	}
	if len(versions) != 3 {
		t.Errorf("Expected 3 versions, got %d", len(versions))
	}

	chapter, err := services.GetChapter(db, "KJV", 1, 1)
	if err != nil {
		t.Fatalf("GetChapter failed: %v", err)
	}
	if chapter.BookName != "Genesis" || len(chapter.Verses) == 0 {
		t.Errorf("Unexpected chapter: %+v", chapter)
	}

	// Cross-entity search over a real MariaDB, Ukrainian included
	results, err := services.Search(context.Background(), db, "Бог", "all", "demo@biblestudy.local")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results.Bible) == 0 {
		t.Error("Expected Ukrainian verse hits for 'Бог'")
	}

	entry, err := services.GetEntry(db, "7225")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if entry.Code != "H7225" {
		t.Errorf("Expected H7225, got %q", entry.Code)
	}
}
