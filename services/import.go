// services/import.go - Load a corpus into the verses table
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"urecite/corpus"
	"urecite/models"
)

const importBatchSize = 500

// ImportResult summarises one ImportCorpus call.
type ImportResult struct {
	Checksum string `json:"checksum"`
	Inserted int    `json:"inserted"`
	Skipped  bool   `json:"skipped"`
}

// ImportCorpus replaces the verses of translation with c. It is skipped
// when the latest import for translation already has c's checksum.
func ImportCorpus(ctx context.Context, db *gorm.DB, c *corpus.Corpus, translation, source string) (ImportResult, error) {
	res := ImportResult{Checksum: c.Checksum()}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prev models.CorpusImport
		err := tx.Where("translation = ?", translation).Order("id DESC").First(&prev).Error
		switch {
		case err == nil && prev.Checksum == res.Checksum:
			res.Skipped = true
			return nil
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to check previous imports: %w", err)
		}

		if err := tx.Where("translation = ?", translation).Delete(&models.Verse{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s verses: %w", translation, err)
		}

		entries := c.Entries()
		for i := 0; i < len(entries); i += importBatchSize {
			end := min(i+importBatchSize, len(entries))

			batch := make([]models.Verse, 0, end-i)
			for j, e := range entries[i:end] {
				batch = append(batch, models.Verse{
					Translation: translation,
					Book:        e.Book,
					Chapter:     e.Chapter,
					Verse:       e.Verse,
					Position:    i + j,
					Text:        e.Text,
				})
			}
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to insert verses %d-%d: %w", i+1, end, err)
			}
			res.Inserted += len(batch)
		}

		return tx.Create(&models.CorpusImport{
			Checksum:    res.Checksum,
			Translation: translation,
			Source:      source,
			VerseCount:  res.Inserted,
		}).Error
	})
	if err != nil {
		return ImportResult{}, err
	}

	if res.Skipped {
		log.Printf("⏭️  Corpus %s already loaded as %s, skipping", res.Checksum[:12], translation)
	} else {
		log.Printf("✅ Imported %d %s verses (%s)", res.Inserted, translation, res.Checksum[:12])
	}
	return res, nil
}
