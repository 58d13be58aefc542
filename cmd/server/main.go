// main.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/shershunm/BibleStudy/internal/config"
	"github.com/shershunm/BibleStudy/internal/database"
	"github.com/shershunm/BibleStudy/internal/handlers"
	"github.com/shershunm/BibleStudy/internal/middleware"
	"github.com/shershunm/BibleStudy/internal/types"

	_ "github.com/shershunm/BibleStudy/docs/api" // Swagger docs
)

// @title BibleStudy API
// @version 1.0.0
// @description Bilingual Bible-study data service: Scripture, Strong's lexicon, notes, maps and cross-entity search

// @contact.name API Support
// @contact.url https://github.com/shershunm/BibleStudy

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("biblestudy")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.Version())

	// Create handlers
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authHandler := handlers.NewAuthHandler(db, sessionTTL)
	searchHandler := handlers.NewSearchHandler(db)
	bibleHandler := handlers.NewBibleHandler(db)
	dictionaryHandler := handlers.NewDictionaryHandler(db)
	mapsHandler := handlers.NewMapsHandler(db)
	userHandler := handlers.NewUserHandler(db)
	notesHandler := handlers.NewNotesHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	authRequired := middleware.AuthUser(db)

	// Auth
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authRequired, authHandler.Logout)

	// Search
	api.Get("/search", searchHandler.Search)

	// Scripture
	api.Get("/bible/versions", bibleHandler.GetVersions)
	api.Get("/bible/books/:versionCode", bibleHandler.GetBooks)
	api.Get("/bible/chapter/:versionCode/:bookNumber/:chapterNumber", bibleHandler.GetChapter)

	// Lexicon
	api.Get("/dictionary/:code", dictionaryHandler.GetEntry)
	api.Get("/strongs/:number", dictionaryHandler.GetStrongs)

	// Maps
	api.Get("/maps/locations", mapsHandler.GetLocations)
	api.Get("/maps/journeys", mapsHandler.GetJourneys)

	// User data (study pad write requires a session)
	api.Post("/user/studypad", authRequired, userHandler.SaveStudyPad)
	api.Get("/user/:email", userHandler.GetUserData)

	// Notes (all mutations require a session)
	api.Post("/notes", authRequired, notesHandler.UpsertVerseNote)
	api.Post("/notes/library", authRequired, notesHandler.CreateStudyNote)
	api.Put("/notes/library/:id", authRequired, notesHandler.UpdateStudyNote)
	api.Delete("/notes/library/:id", authRequired, notesHandler.DeleteStudyNote)

	// Health
	api.Get("/health", healthHandler.Check)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally, keeping the Express-compatible
// bare {"error": message} body.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
