package services

import (
	"github.com/shershunm/BibleStudy/internal/models"
	"gorm.io/gorm"
)

// ListLocations returns every map location, ordered by name.
func ListLocations(db *gorm.DB) ([]models.MapLocation, error) {
	var locations []models.MapLocation
	if err := db.Order("name").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// ListJourneys returns every journey with its waypoint payload.
func ListJourneys(db *gorm.DB) ([]models.Journey, error) {
	var journeys []models.Journey
	if err := db.Order("id").Find(&journeys).Error; err != nil {
		return nil, err
	}
	return journeys, nil
}
