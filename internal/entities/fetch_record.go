package entities

import "time"

// FetchRecord is one aggregation run over a category, kept for operational
// history. Rows older than the configured retention are purged by the janitor.
type FetchRecord struct {
	ID           int `gorm:"primaryKey"`
	Category     string
	ScrapedCount int
	StaticCount  int
	CreatedAt    time.Time
}
