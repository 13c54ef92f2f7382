package wordtable

import (
	"encoding/binary"
)

// GuideSize is the number of entries in a guide table, one for every
// possible two-byte prefix key.
const GuideSize = 1 << 16

// BuildGuide builds the GUIDETABLE array for a word list. Entry k is the
// ordinal of the first word whose first two bytes, read in the given byte
// order, form the key k. Keys matched by no word map to the ordinal of the
// last word in the list, which is how the libcobalt lookup detects a miss.
//
// In the table a one-byte word is followed by its null terminator, and the
// lookup reads its key with a two-byte load, so a one-byte word keys as
// (byte, 0x00). Empty words form no key: a two-byte load at an empty entry
// reads into the next word, which the guide cannot represent. The list must
// hold at most 65536 words so that every ordinal fits in a uint16; the
// caller enforces the stricter uint16_t bound on the word count itself.
func BuildGuide(words [][]byte, order binary.ByteOrder) []uint16 {
	guide := make([]uint16, GuideSize)
	if len(words) == 0 {
		return guide
	}

	last := uint16(len(words) - 1)
	for k := range guide {
		guide[k] = last
	}

	seen := make([]bool, GuideSize)
	for i, w := range words {
		if len(w) == 0 {
			continue
		}
		var prefix [2]byte
		prefix[0] = w[0]
		if len(w) > 1 {
			prefix[1] = w[1]
		}
		k := order.Uint16(prefix[:])
		if !seen[k] {
			seen[k] = true
			guide[k] = uint16(i)
		}
	}
	return guide
}
