// Package navigation tracks which book a reciting user is on.
package navigation

// Cursor walks a fixed book order and wraps around at both ends. A Cursor
// is owned by a single session and is not safe for concurrent use.
type Cursor struct {
	books []string
	index int
}

// NewCursor starts at the first book.
func NewCursor(books []string) *Cursor {
	return &Cursor{books: append([]string(nil), books...)}
}

// Len returns the number of books.
func (c *Cursor) Len() int {
	return len(c.books)
}

// Books returns a copy of the book order.
func (c *Cursor) Books() []string {
	return append([]string(nil), c.books...)
}

// Index returns the zero-based position of the current book.
func (c *Cursor) Index() int {
	return c.index
}

// Current returns the current book, or "" when there are no books.
func (c *Cursor) Current() string {
	if len(c.books) == 0 {
		return ""
	}
	return c.books[c.index]
}

// Next advances one book, wrapping from the last to the first.
func (c *Cursor) Next() string {
	if len(c.books) == 0 {
		return ""
	}
	c.index = (c.index + 1) % len(c.books)
	return c.books[c.index]
}

// Previous steps back one book, wrapping from the first to the last.
func (c *Cursor) Previous() string {
	if len(c.books) == 0 {
		return ""
	}
	c.index = (c.index - 1 + len(c.books)) % len(c.books)
	return c.books[c.index]
}

// Select jumps to book. It reports false and leaves the cursor alone when
// book is unknown.
func (c *Cursor) Select(book string) bool {
	for i, b := range c.books {
		if b == book {
			c.index = i
			return true
		}
	}
	return false
}

// SetIndex jumps to position i, wrapping out-of-range values.
func (c *Cursor) SetIndex(i int) {
	if len(c.books) == 0 {
		return
	}
	n := len(c.books)
	c.index = ((i % n) + n) % n
}

// Progress is the "N of M books" line shown under the prompt.
type Progress struct {
	Book     string  `json:"book"`
	Position int     `json:"position"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
}

// Progress counts the current book as reached.
func (c *Cursor) Progress() Progress {
	if len(c.books) == 0 {
		return Progress{}
	}
	pos := c.index + 1
	return Progress{
		Book:     c.books[c.index],
		Position: pos,
		Total:    len(c.books),
		Percent:  float64(pos) / float64(len(c.books)) * 100,
	}
}
