package models

import "time"

// One row per completed food analysis. Rows are append-only:
// nothing ever updates or deletes them, the table only grows.
type AnalysisRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Date      string    `gorm:"not null" json:"date"` // "DD-MM-YYYY HH:MM", display only
	CreatedAt time.Time `gorm:"index" json:"-"`       // ordering column; the Date string does not sort
	Meal      string    `json:"meal"`                 // first line of the analysis text
	Calories  int       `json:"calories"`             // 0 when no kcal figure was found
	Details   string    `json:"details"`              // full analysis text

	HighCalorie bool `gorm:"-" json:"highCalorie"` // computed on read, not stored
}

func (AnalysisRecord) TableName() string {
	return "history"
}
