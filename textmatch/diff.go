// textmatch/diff.go - Word-level alignment against the canonical text
package textmatch

// Segment is one canonical word tagged with whether the user said it at the
// same position.
type Segment struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

// Diff aligns the words of user and actual position by position. The result
// always has one segment per word of actual; missing user words count as
// wrong and extra trailing user words are ignored.
func Diff(user, actual string) []Segment {
	userWords := Words(user)
	actualWords := Words(actual)

	segments := make([]Segment, 0, len(actualWords))
	for i, word := range actualWords {
		correct := i < len(userWords) && userWords[i] == word
		segments = append(segments, Segment{Word: word, Correct: correct})
	}
	return segments
}

// CorrectCount returns how many segments were spoken correctly.
func CorrectCount(segments []Segment) int {
	n := 0
	for _, s := range segments {
		if s.Correct {
			n++
		}
	}
	return n
}
