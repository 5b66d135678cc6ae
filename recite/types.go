// Package recite checks a spoken recitation against the canonical verse it
// names: it resolves the spoken reference to a known book, looks the verse
// up, scores the similarity of the quote and builds a word-level diff.
//
// Everything here is a pure function of its inputs. Book order and verse
// text are injected through [Lookup]; navigation state belongs to callers.
package recite

import (
	"fmt"

	"urecite/textmatch"
)

// VerseKey identifies one verse. Chapter and Verse are always >= 1.
type VerseKey struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// String renders the lookup form "<book> <chapter>:<verse>".
func (k VerseKey) String() string {
	return fmt.Sprintf("%s %d:%d", k.Book, k.Chapter, k.Verse)
}

// Lookup returns the canonical text for a verse.
type Lookup interface {
	Verse(key VerseKey) (string, bool)
}

// LookupFunc adapts a plain function to [Lookup].
type LookupFunc func(key VerseKey) (string, bool)

// Verse calls f.
func (f LookupFunc) Verse(key VerseKey) (string, bool) {
	return f(key)
}

// Status is the terminal state of one match attempt.
type Status string

const (
	StatusParseFailed   Status = "parse_failed"
	StatusBookUnknown   Status = "book_unknown"
	StatusVerseNotFound Status = "verse_not_found"
	StatusMatched       Status = "matched"
	StatusMatchFailed   Status = "match_failed"
)

// MatchResult is produced fresh for every attempt and never mutated.
type MatchResult struct {
	Status Status `json:"status"`
	// Key is set once the book resolved, including on StatusVerseNotFound.
	Key *VerseKey `json:"resolved_key,omitempty"`
	// Accuracy is the 0-100 similarity, set only when the verse was found.
	Accuracy     *float64            `json:"accuracy,omitempty"`
	Segments     []textmatch.Segment `json:"diff"`
	BookFragment string              `json:"book_fragment,omitempty"`
	Quote        string              `json:"quote,omitempty"`
	Expected     string              `json:"expected,omitempty"`
}

// Passed reports whether the recitation cleared the threshold.
func (r MatchResult) Passed() bool {
	return r.Status == StatusMatched
}

// Message returns the line shown to the user for this result.
func (r MatchResult) Message() string {
	switch r.Status {
	case StatusParseFailed:
		return `Could not parse your reference. Chapters and verses start at 1; try saying something like "Genesis 1:1".`
	case StatusBookUnknown:
		return fmt.Sprintf("Unknown book %q. Try again.", r.BookFragment)
	case StatusVerseNotFound:
		return fmt.Sprintf("Verse %q not found in Bible data.", r.Key.String())
	case StatusMatched:
		return fmt.Sprintf("Matched %s at %.1f%%", r.Key.String(), *r.Accuracy)
	case StatusMatchFailed:
		return fmt.Sprintf("Match too low (%.1f%%). Try again.", *r.Accuracy)
	default:
		return ""
	}
}
