package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCorpus = `{
  "Genesis 1:1": "In the beginning God created the heaven and the earth.",
  "Exodus 1:1": "Now these are the names of the children of Israel",
  "Matthew 1:1": "The book of the generation of Jesus Christ",
  "John 11:35": "Jesus wept."
}`

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kjv.json")
	if err := os.WriteFile(path, []byte(testCorpus), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func TestMatchCommand(t *testing.T) {
	corpus := writeCorpus(t)

	out, err := runCLI(t, "--corpus", corpus, "match", "John 11 35 Jesus wept")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Matched John 11:35 at 100.0%")
	requireContains(t, out, "wept")

	out, err = runCLI(t, "--corpus", corpus, "match", "Genesis", "1", "1", "in", "the", "end")
	if err != nil {
		t.Fatalf("match without --strict: %v", err)
	}
	requireContains(t, out, "Match too low")

	if _, err := runCLI(t, "--corpus", corpus, "match", "--strict", "mumble mumble"); err == nil {
		t.Fatal("match --strict on a parse failure: want error")
	}
}

func TestThresholdOutOfRange(t *testing.T) {
	corpus := writeCorpus(t)

	for _, v := range []string{"-1", "100.5", "250"} {
		_, err := runCLI(t, "--corpus", corpus, "--threshold="+v, "match", "John 11 35 Jesus wept")
		if err == nil || !strings.Contains(err.Error(), "--threshold") {
			t.Errorf("--threshold %s: err = %v, want range error", v, err)
		}
	}

	if _, err := runCLI(t, "--corpus", corpus, "--threshold", "100", "match", "John 11 35 Jesus wept"); err != nil {
		t.Errorf("--threshold 100: %v", err)
	}
}

func TestMatchCommand_JSON(t *testing.T) {
	corpus := writeCorpus(t)

	out, err := runCLI(t, "--corpus", corpus, "--json", "--threshold", "90", "match", "John 11 35 Jesus slept")
	if err != nil {
		t.Fatalf("match --json: %v", err)
	}
	var payload struct {
		Passed bool `json:"passed"`
		Result struct {
			Status string `json:"status"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if payload.Passed || payload.Result.Status != "match_failed" {
		t.Errorf("payload = %+v, want match_failed at threshold 90", payload)
	}
}

func TestBooksCommand(t *testing.T) {
	out, err := runCLI(t, "--corpus", writeCorpus(t), "books")
	if err != nil {
		t.Fatalf("books: %v", err)
	}
	requireContains(t, out, "Exodus")
	requireContains(t, out, "New")
	requireContains(t, out, "4 books, 4 verses")
}

func TestVerseCommand(t *testing.T) {
	corpus := writeCorpus(t)

	out, err := runCLI(t, "--corpus", corpus, "verse", "john", "11:35")
	if err != nil {
		t.Fatalf("verse: %v", err)
	}
	requireContains(t, out, "John 11:35")
	requireContains(t, out, "Jesus wept.")

	if _, err := runCLI(t, "--corpus", corpus, "verse", "John"); err == nil {
		t.Error("verse without chapter:verse: want error")
	}
	if _, err := runCLI(t, "--corpus", corpus, "verse", "John 99:1"); err == nil {
		t.Error("verse John 99:1: want error")
	}
}

func TestSuggestCommand(t *testing.T) {
	out, err := runCLI(t, "--corpus", writeCorpus(t), "suggest", "-n", "2", "jenesis")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	requireContains(t, out, "Genesis")
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	os.WriteFile(good, []byte("1. Genesis 1:1 — In the beginning God created\n"), 0o644)
	os.WriteFile(bad, []byte("1. Genesis 1:1 — In the beginning God created\nnot a verse\n"), 0o644)

	out, err := runCLI(t, "lint", good)
	if err != nil {
		t.Fatalf("lint good: %v", err)
	}
	requireContains(t, out, "good.txt: OK")

	out, err = runCLI(t, "lint", good, bad)
	if err == nil {
		t.Fatal("lint with a bad file: want error")
	}
	requireContains(t, out, "bad.txt:2: does not match")
}

func TestImportCommand(t *testing.T) {
	corpus := writeCorpus(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "urecite.db"))
	t.Setenv("CORPUS_SOURCE", "")
	t.Setenv("MATCH_THRESHOLD", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "production")

	out, err := runCLI(t, "import", corpus)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Imported 4 KJV verses")

	out, err = runCLI(t, "import", "--translation", "KJV", corpus)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	requireContains(t, out, "already imported")
}
