package recite

import (
	"strconv"
	"strings"

	"urecite/textmatch"
	"urecite/verseparser"
)

// DefaultThreshold is the accuracy a recitation needs to count as matched.
const DefaultThreshold = 70.0

// Option configures a [Matcher].
type Option func(*Matcher)

// WithThreshold sets the minimum accuracy (0-100) for StatusMatched.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// Matcher runs one recitation attempt end to end. It is read-only after
// construction and safe for concurrent use as long as its Lookup is.
type Matcher struct {
	resolver  *BookResolver
	lookup    Lookup
	threshold float64
}

// NewMatcher builds a matcher over the given canonical book order.
func NewMatcher(books []string, lookup Lookup, opts ...Option) *Matcher {
	m := &Matcher{
		resolver:  NewBookResolver(books),
		lookup:    lookup,
		threshold: DefaultThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Threshold returns the configured pass mark.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Books returns the canonical book order the matcher resolves against.
func (m *Matcher) Books() []string {
	return m.resolver.Books()
}

// Match parses raw, resolves the book, fetches the verse and grades the
// quote that follows the spoken reference.
func (m *Matcher) Match(raw string) MatchResult {
	ref, err := verseparser.ParseReference(raw)
	if err != nil {
		return MatchResult{Status: StatusParseFailed, Segments: []textmatch.Segment{}}
	}

	book, ok := m.resolver.Resolve(ref.BookFragment)
	if !ok {
		return MatchResult{
			Status:       StatusBookUnknown,
			BookFragment: ref.BookFragment,
			Segments:     []textmatch.Segment{},
		}
	}

	key := VerseKey{Book: book, Chapter: ref.Chapter, Verse: ref.Verse}
	expected, ok := m.lookup.Verse(key)
	if !ok {
		return MatchResult{
			Status:       StatusVerseNotFound,
			Key:          &key,
			BookFragment: ref.BookFragment,
			Segments:     []textmatch.Segment{},
		}
	}

	quote := extractQuote(raw, ref)
	accuracy := textmatch.Similarity(textmatch.Normalize(quote), textmatch.Normalize(expected))

	status := StatusMatchFailed
	if accuracy >= m.threshold {
		status = StatusMatched
	}

	return MatchResult{
		Status:       status,
		Key:          &key,
		Accuracy:     &accuracy,
		Segments:     textmatch.Diff(quote, expected),
		BookFragment: ref.BookFragment,
		Quote:        strings.TrimSpace(quote),
		Expected:     expected,
	}
}

// extractQuote drops the spoken reference: everything up to and including
// the first occurrence of the verse number, searching from the verse token
// the parser found. Without an occurrence the whole text is the quote.
func extractQuote(raw string, ref verseparser.Reference) string {
	num := strconv.Itoa(ref.Verse)
	if ref.VerseOffset < 0 || ref.VerseOffset > len(raw) {
		return raw
	}
	if i := strings.Index(raw[ref.VerseOffset:], num); i >= 0 {
		return raw[ref.VerseOffset+i+len(num):]
	}
	return raw
}
