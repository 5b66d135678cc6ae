// textmatch/distance.go - Levenshtein distance and 0-100 similarity scores
package textmatch

// Distance returns the Levenshtein edit distance between a and b, counting
// insertions, deletions and substitutions of single characters at cost 1.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	// matrix[i][j] holds the distance between br[:i] and ar[:j]
	matrix := make([][]int, len(br)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ar)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(ar); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(br); i++ {
		for j := 1; j <= len(ar); j++ {
			if br[i-1] == ar[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = 1 + min(
				matrix[i-1][j-1], // substitute
				matrix[i][j-1],   // insert
				matrix[i-1][j],   // delete
			)
		}
	}

	return matrix[len(br)][len(ar)]
}

// Similarity scores how close spoken is to expected on a 0-100 scale,
// relative to the longer of the two strings. Two empty strings are
// identical and score 100.
func Similarity(spoken, expected string) float64 {
	maxLen := max(len([]rune(spoken)), len([]rune(expected)))
	if maxLen == 0 {
		return 100
	}

	distance := Distance(spoken, expected)
	return float64(maxLen-distance) / float64(maxLen) * 100
}
