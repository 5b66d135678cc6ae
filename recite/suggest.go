package recite

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"urecite/textmatch"
)

// Suggestion is a ranked book candidate for a partial or misheard name.
type Suggestion struct {
	Book     string  `json:"book"`
	Score    float64 `json:"score"`
	Phonetic bool    `json:"phonetic"`
}

// SuggestBooks ranks books against query for autocomplete and "did you
// mean" prompts. Books that sound alike (shared Double Metaphone code) rank
// ahead of pure spelling matches; within a group higher Jaro-Winkler
// scores come first and ties keep canonical order.
func SuggestBooks(query string, books []string, limit int) []Suggestion {
	needle := textmatch.Normalize(query)
	if needle == "" || limit <= 0 {
		return nil
	}
	needleCodes := metaphoneCodes(needle)

	out := make([]Suggestion, 0, len(books))
	for _, book := range books {
		candidate := textmatch.Normalize(book)
		score := matchr.JaroWinkler(needle, candidate, false)
		// prefix typing ("gen", "1 co") should always surface the book
		if strings.HasPrefix(candidate, needle) {
			score = max(score, 0.9+0.1*float64(len(needle))/float64(len(candidate)))
		}
		if score <= 0 {
			continue
		}
		out = append(out, Suggestion{
			Book:     book,
			Score:    score,
			Phonetic: overlaps(needleCodes, metaphoneCodes(candidate)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Phonetic != out[j].Phonetic {
			return out[i].Phonetic
		}
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func metaphoneCodes(s string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		p, alt := matchr.DoubleMetaphone(word)
		if p != "" {
			codes[p] = struct{}{}
		}
		if alt != "" {
			codes[alt] = struct{}{}
		}
	}
	return codes
}

func overlaps(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}
