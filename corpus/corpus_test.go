package corpus_test

import (
	"reflect"
	"testing"

	"urecite/corpus"
	"urecite/recite"
)

func TestBooksFromKeys(t *testing.T) {
	t.Parallel()

	keys := []string{"Genesis 1:1", "Genesis 1:2", "Exodus 1:1", "1 John 4:8", "Genesis 2:1"}
	got := corpus.BooksFromKeys(keys)
	want := []string{"Genesis", "Exodus", "1 John"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BooksFromKeys() = %v, want %v", got, want)
	}
}

func TestTestaments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		books   []string
		wantOld []string
		wantNew []string
	}{
		{"split at Matthew", []string{"Genesis", "Malachi", "Matthew", "Mark"}, []string{"Genesis", "Malachi"}, []string{"Matthew", "Mark"}},
		{"no Matthew", []string{"Genesis", "Exodus"}, []string{"Genesis", "Exodus"}, []string{}},
		{"starts with Matthew", []string{"Matthew", "John"}, []string{}, []string{"Matthew", "John"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			old, nt := corpus.Testaments(tt.books)
			if len(old) != len(tt.wantOld) || (len(old) > 0 && !reflect.DeepEqual(old, tt.wantOld)) {
				t.Errorf("old = %v, want %v", old, tt.wantOld)
			}
			if !reflect.DeepEqual(nt, tt.wantNew) {
				t.Errorf("new = %v, want %v", nt, tt.wantNew)
			}
		})
	}
}

func TestBookName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"gn":  "Genesis",
		"1jo": "1 John",
		"PS":  "Psalms",
		"xyz": "xyz",
		"jn":  "John",
	}
	for abbrev, want := range tests {
		if got := corpus.BookName(abbrev); got != want {
			t.Errorf("BookName(%q) = %q, want %q", abbrev, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := corpus.New(
		[]string{"Genesis 1:1", "Genesis 1:2", "Genesis 1:1", "John 3:16"},
		[]string{"In the beginning", "And the earth", "duplicate", "For God so loved"},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if got, want := c.Books(), []string{"Genesis", "John"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Books() = %v, want %v", got, want)
	}

	text, ok := c.Verse(recite.VerseKey{Book: "Genesis", Chapter: 1, Verse: 1})
	if !ok || text != "In the beginning" {
		t.Errorf("Verse(Genesis 1:1) = %q, %v; want first entry", text, ok)
	}
	if _, ok := c.Verse(recite.VerseKey{Book: "Genesis", Chapter: 50, Verse: 1}); ok {
		t.Error("Verse(Genesis 50:1) found, want missing")
	}

	entries := c.Entries()
	if entries[2].Book != "John" || entries[2].Chapter != 3 || entries[2].Verse != 16 {
		t.Errorf("Entries()[2] = %+v", entries[2])
	}
	old, nt := c.Testaments()
	if len(old) != 2 || len(nt) != 0 {
		t.Errorf("Testaments() = %v, %v", old, nt)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	if _, err := corpus.New([]string{"Genesis 1:1"}, nil); err == nil {
		t.Error("New() with mismatched lengths: want error")
	}
	if _, err := corpus.New([]string{"Genesis"}, []string{"text"}); err == nil {
		t.Error("New() with invalid key: want error")
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	a, _ := corpus.New([]string{"Genesis 1:1"}, []string{"In the beginning"})
	b, _ := corpus.New([]string{"Genesis 1:1"}, []string{"In the beginning"})
	c, _ := corpus.New([]string{"Genesis 1:1"}, []string{"In the beginning God"})

	if len(a.Checksum()) != 64 {
		t.Errorf("Checksum() length = %d, want 64 hex chars", len(a.Checksum()))
	}
	if a.Checksum() != b.Checksum() {
		t.Error("identical corpora have different checksums")
	}
	if a.Checksum() == c.Checksum() {
		t.Error("different corpora share a checksum")
	}
}
