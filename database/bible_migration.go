// database/bible_migration.go
package database

import (
	"gorm.io/gorm"

	"urecite/models"
)

// MigrateVerses creates the verses table and its import ledger.
func MigrateVerses(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Verse{}, &models.CorpusImport{}); err != nil {
		return err
	}
	// older databases made checksums unique across translations
	if m := db.Migrator(); m.HasIndex(&models.CorpusImport{}, "idx_corpus_imports_checksum") {
		if err := m.DropIndex(&models.CorpusImport{}, "idx_corpus_imports_checksum"); err != nil {
			return err
		}
	}
	return db.Exec("CREATE INDEX IF NOT EXISTS idx_verses_book_position ON verses(translation, position)").Error
}
