// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"urecite/models"
)

// RunMigrations creates or updates every table the server uses.
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := MigrateVerses(db); err != nil {
		return fmt.Errorf("failed to migrate verses: %w", err)
	}
	if err := db.AutoMigrate(&models.Attempt{}); err != nil {
		return fmt.Errorf("failed to migrate attempts: %w", err)
	}

	createAttemptIndexes(db)

	log.Println("✅ All migrations completed successfully")
	return nil
}

func createAttemptIndexes(db *gorm.DB) {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_attempts_user_created ON attempts(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_attempts_ref ON attempts(book, chapter, verse)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("⚠️  index creation failed: %v", err)
		}
	}
}
