package models

import "time"

// ProcessLog is one persisted record of a completed batch run.
// Only real (non test mode) runs are logged, and only once per run,
// when the terminal chunk finishes.
type ProcessLog struct {
	BaseModel
	ProcessDate time.Time `gorm:"index" json:"process_date"`
	Operation   string    `gorm:"default:generate" json:"operation"`
	TotalImages int       `json:"total_images"`
	Processed   int       `json:"processed"`
	Success     int       `json:"success"`
	Skipped     int       `json:"skipped"`
	Errors      int       `json:"errors"`
	TestMode    bool      `json:"test_mode"`
}
