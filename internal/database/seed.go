// seed.go
//
// Go replacement for the BibleStudy nodejs/express data backend.
// Copyright (c) 2026 Mykhailo Shershun

package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shershunm/BibleStudy/data"
	"github.com/shershunm/BibleStudy/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedVerse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type seedChapter struct {
	Number int         `json:"number"`
	Verses []seedVerse `json:"verses"`
}

type seedBook struct {
	Number   int           `json:"number"`
	Name     string        `json:"name"`
	Chapters []seedChapter `json:"chapters"`
}

type seedVersion struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Language   string     `json:"language"`
	HasStrongs bool       `json:"hasStrongs"`
	Books      []seedBook `json:"books"`
}

type seedJourney struct {
	Name          string          `json:"name"`
	NameUkrainian string          `json:"nameUkrainian"`
	Color         string          `json:"color"`
	Category      string          `json:"category"`
	Waypoints     json.RawMessage `json:"waypoints"`
}

type seedUser struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	StudyPad string `json:"studyPad"`
}

// Seed loads the embedded fixtures into the database. Rows are matched on
// their natural keys, so running the seed twice creates no duplicates.
func Seed(db *gorm.DB) error {
	if err := seedVersions(db); err != nil {
		return fmt.Errorf("seed versions: %w", err)
	}
	if err := seedDictionary(db); err != nil {
		return fmt.Errorf("seed dictionary: %w", err)
	}
	if err := seedLocations(db); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	if err := seedJourneys(db); err != nil {
		return fmt.Errorf("seed journeys: %w", err)
	}
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Println("Seed complete")
	return nil
}

func seedVersions(db *gorm.DB) error {
	var versions []seedVersion
	if err := json.Unmarshal(data.SeedVersions, &versions); err != nil {
		return err
	}

	for _, sv := range versions {
		var version models.BibleVersion
		err := db.Where(models.BibleVersion{Code: sv.Code}).
			Assign(models.BibleVersion{
				Name:       sv.Name,
				Language:   sv.Language,
				HasStrongs: sv.HasStrongs,
			}).
			FirstOrCreate(&version).Error
		if err != nil {
			return err
		}

		for _, sb := range sv.Books {
			var book models.Book
			err := db.Where(models.Book{BibleVersionID: version.ID, Number: sb.Number}).
				Assign(models.Book{Name: sb.Name}).
				FirstOrCreate(&book).Error
			if err != nil {
				return err
			}

			for _, sc := range sb.Chapters {
				var chapter models.Chapter
				err := db.Where(models.Chapter{BookID: book.ID, Number: sc.Number}).
					FirstOrCreate(&chapter).Error
				if err != nil {
					return err
				}

				for _, v := range sc.Verses {
					var verse models.Verse
					err := db.Where(models.Verse{ChapterID: chapter.ID, Number: v.Number}).
						Assign(models.Verse{Text: v.Text}).
						FirstOrCreate(&verse).Error
					if err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func seedDictionary(db *gorm.DB) error {
	var entries []models.DictionaryEntry
	if err := json.Unmarshal(data.SeedDictionary, &entries); err != nil {
		return err
	}

	for _, e := range entries {
		var entry models.DictionaryEntry
		err := db.Where(models.DictionaryEntry{Code: e.Code}).
			Assign(models.DictionaryEntry{
				StrongsNumber:       e.StrongsNumber,
				Language:            e.Language,
				Headword:            e.Headword,
				Transliteration:     e.Transliteration,
				Pronunciation:       e.Pronunciation,
				Definition:          e.Definition,
				DefinitionUkrainian: e.DefinitionUkrainian,
			}).
			FirstOrCreate(&entry).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedLocations(db *gorm.DB) error {
	var locations []models.MapLocation
	if err := json.Unmarshal(data.SeedLocations, &locations); err != nil {
		return err
	}

	for _, l := range locations {
		var location models.MapLocation
		err := db.Where(models.MapLocation{Name: l.Name}).
			Assign(models.MapLocation{
				NameUkrainian:        l.NameUkrainian,
				Latitude:             l.Latitude,
				Longitude:            l.Longitude,
				Description:          l.Description,
				DescriptionUkrainian: l.DescriptionUkrainian,
				BiblicalEra:          l.BiblicalEra,
				LocationType:         l.LocationType,
			}).
			FirstOrCreate(&location).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedJourneys(db *gorm.DB) error {
	var journeys []seedJourney
	if err := json.Unmarshal(data.SeedJourneys, &journeys); err != nil {
		return err
	}

	for _, j := range journeys {
		var journey models.Journey
		err := db.Where(models.Journey{Name: j.Name}).
			Assign(models.Journey{
				NameUkrainian: j.NameUkrainian,
				Color:         j.Color,
				Category:      j.Category,
				Waypoints:     datatypes.JSON(j.Waypoints),
			}).
			FirstOrCreate(&journey).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	var users []seedUser
	if err := json.Unmarshal(data.SeedUsers, &users); err != nil {
		return err
	}

	for _, u := range users {
		// Attrs, not Assign: re-running the seed must not clobber a user's
		// study pad.
		var user models.User
		err := db.Where(models.User{Email: u.Email}).
			Attrs(models.User{
				Name:     u.Name,
				Password: u.Password,
				StudyPad: u.StudyPad,
			}).
			FirstOrCreate(&user).Error
		if err != nil {
			return err
		}
	}
	return nil
}
