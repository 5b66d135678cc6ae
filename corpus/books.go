// corpus/books.go - Canonical book order and names
package corpus

import (
	"regexp"
	"strings"
)

var keySuffix = regexp.MustCompile(` ?\d*:\d*$`)

// BooksFromKeys strips the chapter:verse suffix from every verse key and
// returns the distinct book names in first-seen order.
func BooksFromKeys(keys []string) []string {
	seen := make(map[string]struct{})
	books := make([]string, 0, 66)
	for _, k := range keys {
		book := keySuffix.ReplaceAllString(k, "")
		if _, ok := seen[book]; ok {
			continue
		}
		seen[book] = struct{}{}
		books = append(books, book)
	}
	return books
}

// NewTestamentStart is the first book of the New Testament.
const NewTestamentStart = "Matthew"

// Testaments splits books at the first title starting with Matthew. Without
// one every book is treated as Old Testament.
func Testaments(books []string) (old, new []string) {
	for i, b := range books {
		if strings.HasPrefix(b, NewTestamentStart) {
			return append([]string(nil), books[:i]...), append([]string(nil), books[i:]...)
		}
	}
	return append([]string(nil), books...), []string{}
}

// bookNames maps the abbreviations used by the per-book KJV JSON dumps.
var bookNames = map[string]string{
	"gn": "Genesis", "ex": "Exodus", "lv": "Leviticus", "nm": "Numbers", "dt": "Deuteronomy",
	"js": "Joshua", "jud": "Judges", "rt": "Ruth", "1sm": "1 Samuel", "2sm": "2 Samuel",
	"1kgs": "1 Kings", "2kgs": "2 Kings", "1ch": "1 Chronicles", "2ch": "2 Chronicles",
	"ezr": "Ezra", "ne": "Nehemiah", "et": "Esther", "job": "Job", "ps": "Psalms", "prv": "Proverbs",
	"ec": "Ecclesiastes", "so": "Song of Solomon", "is": "Isaiah", "jr": "Jeremiah",
	"lm": "Lamentations", "ez": "Ezekiel", "dn": "Daniel", "ho": "Hosea", "jl": "Joel",
	"am": "Amos", "ob": "Obadiah", "jn": "John", "jo": "Jonah", "mi": "Micah", "na": "Nahum",
	"hk": "Habakkuk", "zp": "Zephaniah", "hg": "Haggai", "zc": "Zechariah", "ml": "Malachi",
	"mt": "Matthew", "mk": "Mark", "lk": "Luke", "act": "Acts", "rm": "Romans",
	"1co": "1 Corinthians", "2co": "2 Corinthians", "gl": "Galatians", "eph": "Ephesians",
	"ph": "Philippians", "cl": "Colossians", "1ts": "1 Thessalonians", "2ts": "2 Thessalonians",
	"1tm": "1 Timothy", "2tm": "2 Timothy", "tt": "Titus", "phm": "Philemon", "hb": "Hebrews",
	"jm": "James", "1pe": "1 Peter", "2pe": "2 Peter", "1jo": "1 John", "2jo": "2 John",
	"3jo": "3 John", "jd": "Jude", "re": "Revelation",
}

// BookName expands an abbreviation, returning abbrev itself when unknown.
func BookName(abbrev string) string {
	if name, ok := bookNames[strings.ToLower(strings.TrimSpace(abbrev))]; ok {
		return name
	}
	return abbrev
}
