package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shershunm/BibleStudy/internal/config"
	"github.com/shershunm/BibleStudy/internal/database"
)

// Loads the embedded sample data into the configured database. Safe to run
// more than once.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
