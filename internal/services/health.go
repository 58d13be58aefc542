package services

import (
	"time"

	"gorm.io/gorm"
)

// HealthCheckResult reports the state of the service and its database.
type HealthCheckResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// HealthCheck pings the database and reports overall health. The service is
// "healthy" only when the database answers.
func HealthCheck(db *gorm.DB) *HealthCheckResult {
	result := &HealthCheckResult{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "disconnected"
	}
	return result
}
