// services/attempt_service.go - Recitation history
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"urecite/models"
	"urecite/recite"
	"urecite/textmatch"
)

const maxHistoryLimit = 200

type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

// Record stores the outcome of a Match call. userID is nil for guests.
func (s *AttemptService) Record(ctx context.Context, userID *uint, sessionID, transcript string, res recite.MatchResult) (*models.Attempt, error) {
	a := &models.Attempt{
		UserID:       userID,
		SessionID:    sessionID,
		Transcript:   transcript,
		Status:       string(res.Status),
		Accuracy:     res.Accuracy,
		CorrectWords: textmatch.CorrectCount(res.Segments),
		TotalWords:   len(res.Segments),
		Passed:       res.Passed(),
	}
	if res.Key != nil {
		a.Book = res.Key.Book
		a.Chapter = res.Key.Chapter
		a.Verse = res.Key.Verse
	}

	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}
	return a, nil
}

// History returns a user's most recent attempts, newest first.
func (s *AttemptService) History(ctx context.Context, userID uint, limit int) ([]models.Attempt, error) {
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var attempts []models.Attempt
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}
	return attempts, nil
}

// AttemptStats aggregates a user's attempts. Accuracy figures only cover
// attempts that reached scoring.
type AttemptStats struct {
	Total           int64            `json:"total"`
	Passed          int64            `json:"passed"`
	PassRate        float64          `json:"pass_rate"`
	AverageAccuracy float64          `json:"average_accuracy"`
	BestAccuracy    float64          `json:"best_accuracy"`
	ByStatus        map[string]int64 `json:"by_status"`
}

func (s *AttemptService) Stats(ctx context.Context, userID uint) (AttemptStats, error) {
	db := s.db.WithContext(ctx)

	var row struct {
		Total           int64
		Passed          int64
		AverageAccuracy float64
		BestAccuracy    float64
	}
	err := db.Model(&models.Attempt{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed,
			COALESCE(AVG(accuracy), 0) AS average_accuracy,
			COALESCE(MAX(accuracy), 0) AS best_accuracy`).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return AttemptStats{}, fmt.Errorf("failed to aggregate attempts: %w", err)
	}

	var groups []struct {
		Status string
		Count  int64
	}
	err = db.Model(&models.Attempt{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&groups).Error
	if err != nil {
		return AttemptStats{}, fmt.Errorf("failed to group attempts: %w", err)
	}

	stats := AttemptStats{
		Total:           row.Total,
		Passed:          row.Passed,
		AverageAccuracy: row.AverageAccuracy,
		BestAccuracy:    row.BestAccuracy,
		ByStatus:        make(map[string]int64, len(groups)),
	}
	if row.Total > 0 {
		stats.PassRate = float64(row.Passed) / float64(row.Total) * 100
	}
	for _, g := range groups {
		stats.ByStatus[g.Status] = g.Count
	}
	return stats, nil
}
