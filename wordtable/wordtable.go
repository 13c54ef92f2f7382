// Package wordtable converts a newline-separated word list into the
// null-separated word table binary consumed by the libcobalt build.
//
// The table is the words of the list concatenated in order, each terminated
// by a single null byte, the last word included. There is no header and no
// trailing metadata.
package wordtable

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"cdr.dev/slog"

	"github.com/libcobalt/cobaltgen/lib/log"
)

// ErrTruncated reports a word list with fewer lines than the requested
// word count.
var ErrTruncated = errors.New("word list truncated")

// Table describes a fully written word table.
type Table struct {
	// Words is the number of entries written.
	Words int
	// Len is the total number of bytes written, terminators included.
	Len int64
	// Offsets holds the byte offset of each word's first byte within the
	// table. Offsets[i] is the WORDMAP entry for word i.
	Offsets []uint32
}

// StrLen is the length of the table excluding the final null byte. It is the
// value of WORDTABLE_STRLEN in the generated sizes fragment, per the
// convention that a null-terminated string's length does not count its own
// terminator.
func (t *Table) StrLen() int64 {
	return t.Len - 1
}

// Convert reads the first n lines of src and writes them to dst in order,
// with each line's trailing newline replaced by a single null byte. A final
// line without a trailing newline still gets its terminator.
//
// Convert fails with ErrTruncated if src runs out before n lines are read,
// and stops between words if ctx is canceled. The bytes written up to that
// point are not undone; cleaning up the partial destination is the caller's
// job.
func Convert(ctx context.Context, dst io.Writer, src io.Reader, n int) (*Table, error) {
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)

	t := &Table{
		Words:   n,
		Offsets: make([]uint32, 0, n),
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read word %d: %w", i+1, err)
		}
		if err == io.EOF && line == "" {
			return nil, fmt.Errorf("%w: got %d of %d words", ErrTruncated, i, n)
		}
		word := strings.TrimSuffix(line, "\n")
		if strings.IndexByte(word, 0) >= 0 {
			return nil, fmt.Errorf("word %d contains a null byte", i+1)
		}
		if !utf8.ValidString(word) {
			return nil, fmt.Errorf("word %d is not valid UTF-8", i+1)
		}

		t.Offsets = append(t.Offsets, uint32(t.Len))
		if _, err := bw.WriteString(word); err != nil {
			return nil, fmt.Errorf("failed to write word %d: %w", i+1, err)
		}
		if err := bw.WriteByte(0); err != nil {
			return nil, fmt.Errorf("failed to write word %d: %w", i+1, err)
		}
		t.Len += int64(len(word)) + 1
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}

	log.Debug(ctx, "word table written",
		slog.F("words", t.Words),
		slog.F("bytes", t.Len))
	return t, nil
}

// Split returns the words of a null-terminated table blob, in order. It is
// the inverse of Convert for well-formed tables.
func Split(blob []byte) [][]byte {
	if len(blob) == 0 {
		return nil
	}
	if blob[len(blob)-1] == 0 {
		blob = blob[:len(blob)-1]
	}
	return bytes.Split(blob, []byte{0})
}
