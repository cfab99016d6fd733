// Package words reads the comma-separated word list the game is built from
// and converts the upstream NYT list into that format.
package words

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed default.csv
var defaultCSV string

// Constants describing the embedded list: guess-only words sorted
// alphabetically, then the answer words starting at cigar.
const (
	DefaultTotal       = 2059
	DefaultAnswerIndex = 416
)

// Layout of the full NYT list once converted with Reformat.
const (
	NYTTotal       = 14855
	NYTAnswerIndex = 12546
)

// ErrTooFewWords is returned when the source holds fewer words than configured.
var ErrTooFewWords = errors.New("words: source has fewer words than configured")

// Load reads exactly total words from a comma-separated source.
// Entries are trimmed and lowercased; each must be five letters a-z.
// Entries past total are ignored.
func Load(r io.Reader, total int) ([]string, error) {
	if total <= 0 {
		return nil, fmt.Errorf("words: invalid total %d", total)
	}

	fields, err := readFields(r)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, total)
	for _, f := range fields {
		if len(out) == total {
			break
		}
		w := strings.ToLower(strings.TrimSpace(f))
		if w == "" {
			continue // trailing comma or blank line
		}
		if !isWord(w) {
			return nil, fmt.Errorf("words: entry %d %q is not a five-letter word", len(out), w)
		}
		out = append(out, w)
	}

	if len(out) < total {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrTooFewWords, len(out), total)
	}
	return out, nil
}

// LoadFile reads total words from the file at path.
func LoadFile(path string, total int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Load(f, total)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// LoadDefault reads the embedded word list.
func LoadDefault() ([]string, error) {
	return Load(strings.NewReader(defaultCSV), DefaultTotal)
}

// readFields returns every field of every record in a comma-separated source.
func readFields(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	var fields []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("words: cannot parse list: %w", err)
		}
		fields = append(fields, rec...)
	}
	return fields, nil
}

func isWord(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
