package navigation_test

import (
	"testing"

	"urecite/navigation"
)

var books = []string{"Genesis", "Exodus", "Leviticus", "Numbers"}

func TestCursor_WrapsBothWays(t *testing.T) {
	t.Parallel()

	c := navigation.NewCursor(books)
	if got := c.Current(); got != "Genesis" {
		t.Fatalf("Current() = %q, want Genesis", got)
	}
	if got := c.Previous(); got != "Numbers" {
		t.Errorf("Previous() from first = %q, want Numbers", got)
	}
	if got := c.Next(); got != "Genesis" {
		t.Errorf("Next() from last = %q, want Genesis", got)
	}
	c.Next()
	c.Next()
	if got := c.Index(); got != 2 {
		t.Errorf("Index() = %d, want 2", got)
	}
}

func TestCursor_Select(t *testing.T) {
	t.Parallel()

	c := navigation.NewCursor(books)
	if !c.Select("Numbers") {
		t.Fatal("Select(Numbers) = false, want true")
	}
	if c.Select("Revelation") {
		t.Error("Select(Revelation) = true, want false")
	}
	if got := c.Current(); got != "Numbers" {
		t.Errorf("Current() after failed select = %q, want Numbers", got)
	}
}

func TestCursor_SetIndexWraps(t *testing.T) {
	t.Parallel()

	c := navigation.NewCursor(books)
	c.SetIndex(-1)
	if got := c.Current(); got != "Numbers" {
		t.Errorf("SetIndex(-1): Current() = %q, want Numbers", got)
	}
	c.SetIndex(9)
	if got := c.Current(); got != "Exodus" {
		t.Errorf("SetIndex(9): Current() = %q, want Exodus", got)
	}
}

func TestCursor_Progress(t *testing.T) {
	t.Parallel()

	c := navigation.NewCursor(books)
	c.Next()
	p := c.Progress()
	want := navigation.Progress{Book: "Exodus", Position: 2, Total: 4, Percent: 50}
	if p != want {
		t.Errorf("Progress() = %+v, want %+v", p, want)
	}
}

func TestCursor_Empty(t *testing.T) {
	t.Parallel()

	c := navigation.NewCursor(nil)
	if c.Current() != "" || c.Next() != "" || c.Previous() != "" {
		t.Error("empty cursor returned a book")
	}
	c.SetIndex(3)
	if p := c.Progress(); p != (navigation.Progress{}) {
		t.Errorf("Progress() = %+v, want zero", p)
	}
}
