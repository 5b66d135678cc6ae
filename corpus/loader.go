// corpus/loader.go - Corpus file formats and decompression
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"urecite/verseparser"
)

// Format names an on-disk corpus layout.
type Format string

const (
	// FormatAuto sniffs JSON layouts from the first token and treats
	// everything else as TXT.
	FormatAuto Format = ""
	// FormatFlatJSON is {"Genesis 1:1": "In the beginning...", ...}.
	FormatFlatJSON Format = "flat-json"
	// FormatBooksJSON is [{"abbrev": "gn", "chapters": [["..."]]}, ...].
	FormatBooksJSON Format = "books-json"
	// FormatTXT is one "N. Book c:v — text" line per verse.
	FormatTXT Format = "txt"
)

var (
	ErrUnknownFormat = errors.New("corpus: unknown format")
	ErrEmpty         = errors.New("corpus: no verses found")
)

type jsonBook struct {
	Abbrev   string     `json:"abbrev"`
	Name     string     `json:"name,omitempty"`
	Chapters [][]string `json:"chapters"`
}

// Open reads a corpus file. A trailing .zst or .xz extension selects the
// decompressor; the extension under it selects the format.
func Open(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	r, inner, closeFn, err := decompress(f, path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	format := FormatAuto
	if strings.EqualFold(filepath.Ext(inner), ".txt") {
		format = FormatTXT
	}

	c, err := Read(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decompress(r io.Reader, path string) (io.Reader, string, func(), error) {
	ext := strings.ToLower(filepath.Ext(path))
	inner := strings.TrimSuffix(path, filepath.Ext(path))

	switch ext {
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr, inner, zr.Close, nil
	case ".xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to open xz stream: %w", err)
		}
		return xr, inner, func() {}, nil
	default:
		return r, path, func() {}, nil
	}
}

// Read decodes a corpus in the given format.
func Read(r io.Reader, format Format) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	if format == FormatAuto {
		format = sniff(data)
	}

	var keys, texts []string
	switch format {
	case FormatFlatJSON:
		keys, texts, err = decodeFlat(data)
	case FormatBooksJSON:
		keys, texts, err = decodeBooks(data)
	case FormatTXT:
		var bad []int
		keys, texts, bad, err = ScanTXT(bytes.NewReader(data))
		for _, n := range bad {
			log.Printf("⚠️  corpus line %d: does not match 'N. <Reference> — <Text>'", n)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrEmpty
	}
	return New(keys, texts)
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return FormatTXT
	}
	switch trimmed[0] {
	case '{':
		return FormatFlatJSON
	case '[':
		return FormatBooksJSON
	default:
		return FormatTXT
	}
}

func decodeFlat(data []byte) ([]string, []string, error) {
	o := orderedmap.New()
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	keys := o.Keys()
	texts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := o.Get(k)
		s, ok := v.(string)
		if !ok {
			return nil, nil, fmt.Errorf("verse %q: text is %T, not a string", k, v)
		}
		texts = append(texts, s)
	}
	return keys, texts, nil
}

func decodeBooks(data []byte) ([]string, []string, error) {
	var books []jsonBook
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var keys, texts []string
	for _, book := range books {
		name := book.Name
		if name == "" {
			name = BookName(book.Abbrev)
		}
		for chapterNum, chapter := range book.Chapters {
			for verseNum, verseText := range chapter {
				keys = append(keys, fmt.Sprintf("%s %d:%d", name, chapterNum+1, verseNum+1))
				texts = append(texts, verseText)
			}
		}
	}
	return keys, texts, nil
}

// ScanTXT parses numbered verse lines. Lines that carry no single-verse
// reference are reported by line number in bad; blank lines are skipped.
func ScanTXT(r io.Reader) (keys, texts []string, bad []int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ref, text, ok := verseparser.ParseVerseLine(line)
		if !ok {
			bad = append(bad, lineNum)
			continue
		}
		if _, _, _, ok := verseparser.SplitKey(ref); !ok {
			bad = append(bad, lineNum)
			continue
		}
		keys = append(keys, ref)
		texts = append(texts, text)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("scan error: %w", err)
	}
	return keys, texts, bad, nil
}
