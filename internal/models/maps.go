package models

import (
	"time"

	"gorm.io/datatypes"
)

// MapLocation is a named point on the biblical-geography map.
type MapLocation struct {
	ID                   uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string  `gorm:"size:255;not null" json:"name"`
	NameUkrainian        string  `gorm:"size:255" json:"nameUkrainian,omitempty"`
	Latitude             float64 `gorm:"not null" json:"latitude"`
	Longitude            float64 `gorm:"not null" json:"longitude"`
	Description          string  `gorm:"type:text" json:"description"`
	DescriptionUkrainian string  `gorm:"type:text" json:"descriptionUkrainian,omitempty"`
	BiblicalEra          string  `gorm:"size:255" json:"biblicalEra,omitempty"`
	LocationType         string  `gorm:"size:64" json:"type,omitempty"`
	CreatedAt            time.Time `json:"-"`
	UpdatedAt            time.Time `json:"-"`
}

// Journey is an ordered sequence of waypoints rendered as a colored route
// (e.g. the Exodus, Paul's first journey). Waypoints are stored as a JSON
// array of {lat,lng,label} objects; journeys are display/export data only.
type Journey struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	NameUkrainian string         `gorm:"size:255" json:"nameUkrainian,omitempty"`
	Color         string         `gorm:"size:16" json:"color"`
	Category      string         `gorm:"size:64" json:"category"`
	Waypoints     datatypes.JSON `gorm:"type:json" json:"waypoints"`
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
}

// Waypoint is the element shape of Journey.Waypoints.
type Waypoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}
