package recite

import "urecite/textmatch"

// BookResolver maps noisy spoken book names onto a fixed, ordered list of
// titles.
type BookResolver struct {
	books      []string
	normalized []string
}

// NewBookResolver copies books, which must be unique and in canonical order.
func NewBookResolver(books []string) *BookResolver {
	r := &BookResolver{
		books:      append([]string(nil), books...),
		normalized: make([]string, len(books)),
	}
	for i, b := range books {
		r.normalized[i] = textmatch.Normalize(b)
	}
	return r
}

// Books returns the titles in canonical order.
func (r *BookResolver) Books() []string {
	return append([]string(nil), r.books...)
}

// Resolve returns the title most similar to fragment. The first title with
// the strictly highest score wins, so ties go to the earlier book, and a
// title scoring 0 is never picked.
func (r *BookResolver) Resolve(fragment string) (string, bool) {
	needle := textmatch.Normalize(fragment)

	best := -1
	bestScore := 0.0
	for i, candidate := range r.normalized {
		score := textmatch.Similarity(needle, candidate)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return "", false
	}
	return r.books[best], true
}

// ResolveBook is a one-shot [BookResolver.Resolve].
func ResolveBook(fragment string, books []string) (string, bool) {
	return NewBookResolver(books).Resolve(fragment)
}
