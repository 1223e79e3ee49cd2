package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Subbu197328/nutri-app/config"
	"github.com/Subbu197328/nutri-app/models"
)

// HistoryDateLayout matches the TEXT date column in the history table.
const HistoryDateLayout = "02-01-2006 15:04"

// HighCalThreshold marks a meal as high-calorie in the history view.
const HighCalThreshold = 500

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// AppendAnalysis inserts one history row for username. Each call is its own
// transaction; nothing else in the pipeline shares it. calories carries the
// extractor's 0 fallback when no kcal figure was found.
func AppendAnalysis(username, rawText string, calories int, at time.Time) (*models.AnalysisRecord, error) {
	rec := &models.AnalysisRecord{
		Username:  username,
		Date:      at.Format(HistoryDateLayout),
		CreatedAt: at,
		Meal:      firstLine(rawText),
		Calories:  calories,
		Details:   rawText,
	}
	if err := config.DB.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	return rec, nil
}

// ListHistory returns every record owned by username, newest first.
// An owner with no history gets an empty slice, not an error.
// Ordering uses the native timestamp column: the DD-MM-YYYY date string
// compares day-of-month first and misorders across month boundaries.
func ListHistory(username string) ([]models.AnalysisRecord, error) {
	records := []models.AnalysisRecord{}
	err := config.DB.
		Where("username = ?", username).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	for i := range records {
		records[i].HighCalorie = records[i].Calories >= HighCalThreshold
	}
	return records, nil
}
