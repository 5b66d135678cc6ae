// Package corpus holds the canonical verse texts a recitation is checked
// against and loads them from the JSON and TXT dumps the app ships with.
package corpus

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"urecite/recite"
	"urecite/verseparser"
)

// Entry is one verse in canonical order.
type Entry struct {
	Key     string `json:"key"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// Corpus is an immutable, ordered verse collection. It implements
// [recite.Lookup].
type Corpus struct {
	books    []string
	entries  []Entry
	index    map[string]int
	checksum string
}

// New builds a corpus from "<book> <chapter>:<verse>" keys in canonical
// order. The first entry for a repeated key wins.
func New(keys, texts []string) (*Corpus, error) {
	if len(keys) != len(texts) {
		return nil, fmt.Errorf("corpus: %d keys but %d texts", len(keys), len(texts))
	}

	c := &Corpus{
		entries: make([]Entry, 0, len(keys)),
		index:   make(map[string]int, len(keys)),
	}
	hasher := blake3.New()
	kept := make([]string, 0, len(keys))

	for i, key := range keys {
		book, chapter, verse, ok := verseparser.SplitKey(key)
		if !ok {
			return nil, fmt.Errorf("corpus: invalid verse key %q", key)
		}
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, Entry{Key: key, Book: book, Chapter: chapter, Verse: verse, Text: texts[i]})
		kept = append(kept, key)

		fmt.Fprintf(hasher, "%s\t%s\n", key, texts[i])
	}

	c.books = BooksFromKeys(kept)
	c.checksum = hex.EncodeToString(hasher.Sum(nil))
	return c, nil
}

// Books returns the book titles in canonical order.
func (c *Corpus) Books() []string {
	return append([]string(nil), c.books...)
}

// Len returns the number of verses.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Checksum is the blake3 digest of the ordered keys and texts. Two corpora
// with the same checksum hold the same verses.
func (c *Corpus) Checksum() string {
	return c.checksum
}

// Verse implements [recite.Lookup].
func (c *Corpus) Verse(key recite.VerseKey) (string, bool) {
	return c.Text(key.String())
}

// Text looks a verse up by its serialized key.
func (c *Corpus) Text(key string) (string, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.entries[i].Text, true
}

// Entries returns a copy of all verses in order.
func (c *Corpus) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Testaments splits the book list at Matthew.
func (c *Corpus) Testaments() (old, new []string) {
	return Testaments(c.books)
}
