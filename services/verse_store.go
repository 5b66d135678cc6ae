// services/verse_store.go - Database-backed verse lookup
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"gorm.io/gorm"

	"urecite/models"
	"urecite/recite"
)

type cachedVerse struct {
	text  string
	found bool
}

// VerseStore serves one translation from the verses table. Lookups,
// including misses, are cached for a bounded time.
type VerseStore struct {
	db          *gorm.DB
	translation string
	cache       *expirable.LRU[string, cachedVerse]
}

func NewVerseStore(db *gorm.DB, translation string, cacheSize int, ttl time.Duration) *VerseStore {
	return &VerseStore{
		db:          db,
		translation: translation,
		cache:       expirable.NewLRU[string, cachedVerse](cacheSize, nil, ttl),
	}
}

// Books lists book titles in corpus order.
func (s *VerseStore) Books(ctx context.Context) ([]string, error) {
	var books []string
	err := s.db.WithContext(ctx).Model(&models.Verse{}).
		Select("book").
		Where("translation = ?", s.translation).
		Group("book").
		Order("MIN(position)").
		Pluck("book", &books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Count returns the number of stored verses.
func (s *VerseStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Verse{}).Where("translation = ?", s.translation).Count(&n).Error
	return n, err
}

// Get loads a single verse row.
func (s *VerseStore) Get(ctx context.Context, key recite.VerseKey) (models.Verse, error) {
	var v models.Verse
	err := s.db.WithContext(ctx).
		Where("translation = ? AND book = ? AND chapter = ? AND verse = ?", s.translation, key.Book, key.Chapter, key.Verse).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Verse{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return models.Verse{}, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return v, nil
}

// Verse implements [recite.Lookup].
func (s *VerseStore) Verse(key recite.VerseKey) (string, bool) {
	k := key.String()
	if hit, ok := s.cache.Get(k); ok {
		return hit.text, hit.found
	}

	v, err := s.Get(context.Background(), key)
	switch {
	case err == nil:
		s.cache.Add(k, cachedVerse{text: v.Text, found: true})
		return v.Text, true
	case errors.Is(err, ErrNotFound):
		s.cache.Add(k, cachedVerse{})
		return "", false
	default:
		// not cached, the next lookup retries
		log.Printf("❌ verse lookup failed: %v", err)
		return "", false
	}
}

// Purge drops every cached lookup. Imports run in another process, so the
// server calls it through PurgeOn rather than after ImportCorpus.
func (s *VerseStore) Purge() {
	s.cache.Purge()
}

// PurgeOn empties the cache each time reload fires, until ctx is done. The
// book list is fixed at startup; a corpus with new books needs a restart.
func (s *VerseStore) PurgeOn(ctx context.Context, reload <-chan os.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-reload:
			s.Purge()
			log.Printf("🔄 %s verse cache purged (%v)", s.translation, sig)
		}
	}
}
