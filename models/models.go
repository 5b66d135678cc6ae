// models/models.go - Persisted verses and recitation attempts
package models

import (
	"time"
)

// Verse is one canonical verse of an imported translation. Position keeps
// the corpus order so book listings come back canonical.
type Verse struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Translation string `json:"translation" gorm:"size:20;not null;default:'KJV';uniqueIndex:idx_verses_ref"`
	Book        string `json:"book" gorm:"size:64;not null;uniqueIndex:idx_verses_ref"`
	Chapter     int    `json:"chapter" gorm:"not null;uniqueIndex:idx_verses_ref"`
	Verse       int    `json:"verse" gorm:"not null;uniqueIndex:idx_verses_ref"`
	Position    int    `json:"position" gorm:"not null;index"`
	Text        string `json:"text" gorm:"type:text;not null"`
}

// Attempt records the outcome of one recitation. UserID is nil for guests.
type Attempt struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       *uint     `json:"user_id" gorm:"index"`
	SessionID    string    `json:"session_id" gorm:"size:36;index"`
	Transcript   string    `json:"transcript" gorm:"type:text;not null"`
	Status       string    `json:"status" gorm:"size:20;not null;index"`
	Book         string    `json:"book" gorm:"size:64"`
	Chapter      int       `json:"chapter"`
	Verse        int       `json:"verse"`
	Accuracy     *float64  `json:"accuracy"`
	CorrectWords int       `json:"correct_words" gorm:"default:0"`
	TotalWords   int       `json:"total_words" gorm:"default:0"`
	Passed       bool      `json:"passed" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// CorpusImport records one load of a corpus into the verses table. The
// newest row per translation describes the verses currently stored.
type CorpusImport struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Checksum    string    `json:"checksum" gorm:"size:64;not null;index:idx_corpus_imports_translation_checksum,priority:2"`
	Translation string    `json:"translation" gorm:"size:20;not null;index:idx_corpus_imports_translation_checksum,priority:1"`
	Source      string    `json:"source" gorm:"size:255"`
	VerseCount  int       `json:"verse_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Verse) TableName() string {
	return "verses"
}

func (Attempt) TableName() string {
	return "attempts"
}

func (CorpusImport) TableName() string {
	return "corpus_imports"
}
