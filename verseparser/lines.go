// verseparser/lines.go - Numbered "N. Book c:v - text" corpus lines
package verseparser

import (
	"regexp"
	"strings"
)

var (
	numPrefix    = regexp.MustCompile(`^\d+\.`)
	bareNumber   = regexp.MustCompile(`^\d+$`)
	trailingPair = regexp.MustCompile(`(\d+:\d+)\s+(\d+)$`)
)

func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.ReplaceAll(line, "\u202f", " ")
	line = strings.ReplaceAll(line, "\u00a0", " ")
	for _, dash := range []string{"–", "—", "=>", "->"} {
		line = strings.ReplaceAll(line, dash, " ")
	}
	return line
}

// ParseVerseLine splits a numbered corpus line like
// "12. John 3:16 - For God so loved the world" into its reference and text.
// Books may span up to three words. A bare number after the chapter:verse
// token is read as the end of a verse range ("5:22 23" becomes "5:22-23").
// ok is false when the line has no chapter:verse token or less than two
// words of text.
func ParseVerseLine(line string) (ref, text string, ok bool) {
	tokens := strings.Fields(cleanLine(line))
	if len(tokens) < 5 {
		return "", "", false
	}

	colonIdx := -1
	for i, t := range tokens {
		if strings.Contains(t, ":") {
			colonIdx = i
			break
		}
	}
	if colonIdx == -1 {
		return "", "", false
	}

	bookStart := 0
	if numPrefix.MatchString(tokens[0]) {
		bookStart = 1
	}
	if colonIdx-bookStart > 3 {
		bookStart = colonIdx - 3
	}

	refTokens := append([]string(nil), tokens[bookStart:colonIdx+1]...)
	textStart := colonIdx + 1
	if textStart < len(tokens) && bareNumber.MatchString(tokens[textStart]) {
		refTokens = append(refTokens, tokens[textStart])
		textStart++
	}
	// plain ASCII hyphen separators survive cleanLine
	if textStart < len(tokens) && tokens[textStart] == "-" {
		textStart++
	}
	if len(tokens)-textStart < 2 {
		return "", "", false
	}

	ref = strings.TrimSpace(numPrefix.ReplaceAllString(strings.Join(refTokens, " "), ""))
	ref = trailingPair.ReplaceAllString(ref, "$1-$2")
	text = strings.TrimSpace(strings.Join(tokens[textStart:], " "))

	return ref, text, true
}
