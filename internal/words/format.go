package words

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reformat converts the upstream list, written as quoted words separated by
// ", " (for example `"cigar", "rebut"`), into a plain comma-separated list.
// It returns the number of words written.
func Reformat(in io.Reader, out io.Writer) (int, error) {
	fields, err := readFields(in)
	if err != nil {
		return 0, err
	}

	w := bufio.NewWriter(out)
	count := 0
	for _, f := range fields {
		word := strings.TrimSpace(f)
		if word == "" {
			continue
		}
		if count > 0 {
			w.WriteByte(',')
		}
		w.WriteString(word)
		count++
	}

	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("words: cannot write list: %w", err)
	}
	return count, nil
}
