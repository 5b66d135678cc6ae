package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"urecite/models"
)

// CleanupService prunes old recitation attempts in the background.
type CleanupService struct {
	db        *gorm.DB
	retention time.Duration
	interval  time.Duration
}

func NewCleanupService(db *gorm.DB, retention, interval time.Duration) *CleanupService {
	return &CleanupService{db: db, retention: retention, interval: interval}
}

// Run prunes once immediately and then on every interval until ctx is done.
func (s *CleanupService) Run(ctx context.Context) error {
	if s.retention <= 0 || s.interval <= 0 {
		log.Println("🧹 Attempt cleanup disabled")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.PruneAttempts(ctx, time.Now()); err != nil {
			log.Printf("❌ Attempt cleanup failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// PruneAttempts deletes attempts older than the retention window.
func (s *CleanupService) PruneAttempts(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UTC().Add(-s.retention)
	res := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.Attempt{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to prune attempts: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Printf("✅ Cleaned up %d attempts older than %s", res.RowsAffected, s.retention)
	}
	return res.RowsAffected, nil
}
