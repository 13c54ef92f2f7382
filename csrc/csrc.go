// Package csrc renders the generated C source fragments consumed by the
// libcobalt build.
package csrc

import (
	"bytes"
	"fmt"
)

// Every fragment declares constants referenced through cobalt.h, so they all
// share the same include preamble.
const header = "#include <stdint.h>\n#include <stddef.h>\n#include \"cobalt.h\"\n\n"

// Sizes renders the sizes fragment declaring the word count and the table
// string length. No newline after the final declaration.
func Sizes(words int, strlen int64) []byte {
	b := &bytes.Buffer{}
	b.WriteString(header)
	fmt.Fprintf(b, "const uint16_t NUMBER_OF_WORDS = %d;\n", words)
	fmt.Fprintf(b, "const size_t WORDTABLE_STRLEN = %d;", strlen)
	return b.Bytes()
}

// Wordmap renders the WORDMAP fragment: the byte offset of every word within
// the word table, indexed by word ordinal.
func Wordmap(offsets []uint32) []byte {
	b := &bytes.Buffer{}
	b.WriteString(header)
	writeArray(b, "uint32_t", "WORDMAP", len(offsets), 8, func(i int) uint64 {
		return uint64(offsets[i])
	})
	return b.Bytes()
}

// Guidetable renders the GUIDETABLE fragment from the entries built by
// wordtable.BuildGuide.
func Guidetable(entries []uint16) []byte {
	b := &bytes.Buffer{}
	b.WriteString(header)
	writeArray(b, "uint16_t", "GUIDETABLE", len(entries), 12, func(i int) uint64 {
		return uint64(entries[i])
	})
	return b.Bytes()
}

func writeArray(b *bytes.Buffer, ctype, name string, n, perRow int, at func(int) uint64) {
	fmt.Fprintf(b, "const %s %s[] = {", ctype, name)
	for i := 0; i < n; i++ {
		if i%perRow == 0 {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%d,", at(i))
	}
	b.WriteString("\n};\n")
}
