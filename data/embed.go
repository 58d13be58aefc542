package data

import (
	_ "embed"
)

//go:embed seed/versions.json
var SeedVersions []byte

//go:embed seed/dictionary.json
var SeedDictionary []byte

//go:embed seed/locations.json
var SeedLocations []byte

//go:embed seed/journeys.json
var SeedJourneys []byte

//go:embed seed/users.json
var SeedUsers []byte
