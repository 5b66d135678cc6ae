// verseparser/verseparser.go - Scripture reference extraction from free text
package verseparser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"urecite/textmatch"
)

var (
	// ErrNoReference means the text carried no chapter/verse number pair.
	ErrNoReference = errors.New("no chapter and verse found")
	// ErrInvalidNumber means a chapter or verse was zero or out of range.
	ErrInvalidNumber = errors.New("chapter and verse must be positive numbers")
)

// space also covers Unicode separators such as U+00A0, which speech
// engines emit between numbers.
const space = `\s\p{Z}\x{FEFF}`

// Book words, optional "chapter", chapter digits, a space or colon,
// optional "verse", verse digits. The book part is lazy so the first
// number pair in the sentence wins.
var spokenRefRe = regexp.MustCompile(`(?i)([\w` + space + `]+?)[` + space + `]*(?:chapter[` + space + `]*)?(\d+)[` + space + `:]+(?:verse[` + space + `]*)?(\d+)`)

// Reference is the unresolved book/chapter/verse pulled out of a transcript.
type Reference struct {
	BookFragment string `json:"book_fragment"`
	Chapter      int    `json:"chapter"`
	Verse        int    `json:"verse"`
	// VerseOffset is the byte offset of the verse digits in the raw text.
	VerseOffset int `json:"-"`
}

// ParseReference extracts a tentative reference from a spoken sentence such
// as "Genesis chapter 1 verse 1" or "John 3:16 for God so loved". It is a
// heuristic: callers should treat a successful parse as a best guess.
func ParseReference(raw string) (Reference, error) {
	m := spokenRefRe.FindStringSubmatchIndex(raw)
	if m == nil {
		return Reference{}, ErrNoReference
	}

	chapter, err := strconv.Atoi(raw[m[4]:m[5]])
	if err != nil || chapter < 1 {
		return Reference{}, fmt.Errorf("chapter %q: %w", raw[m[4]:m[5]], ErrInvalidNumber)
	}
	verse, err := strconv.Atoi(raw[m[6]:m[7]])
	if err != nil || verse < 1 {
		return Reference{}, fmt.Errorf("verse %q: %w", raw[m[6]:m[7]], ErrInvalidNumber)
	}

	return Reference{
		BookFragment: textmatch.Normalize(strings.TrimSpace(raw[m[2]:m[3]])),
		Chapter:      chapter,
		Verse:        verse,
		VerseOffset:  m[6],
	}, nil
}

var keyRe = regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)$`)

// SplitKey splits a canonical "<book> <chapter>:<verse>" key.
func SplitKey(key string) (book string, chapter, verse int, ok bool) {
	m := keyRe.FindStringSubmatch(strings.TrimSpace(key))
	if m == nil {
		return "", 0, 0, false
	}
	chapter, err := strconv.Atoi(m[2])
	if err != nil || chapter < 1 {
		return "", 0, 0, false
	}
	verse, err = strconv.Atoi(m[3])
	if err != nil || verse < 1 {
		return "", 0, 0, false
	}
	return m[1], chapter, verse, true
}
