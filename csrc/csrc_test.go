package csrc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libcobalt/cobaltgen/csrc"
)

const wantHeader = "#include <stdint.h>\n#include <stddef.h>\n#include \"cobalt.h\"\n\n"

func TestSizes(t *testing.T) {
	t.Parallel()

	want := wantHeader +
		"const uint16_t NUMBER_OF_WORDS = 3;\n" +
		"const size_t WORDTABLE_STRLEN = 11;"
	assert.Equal(t, want, string(csrc.Sizes(3, 11)))
}

func TestWordmap(t *testing.T) {
	t.Parallel()

	t.Run("single_row", func(t *testing.T) {
		t.Parallel()
		want := wantHeader +
			"const uint32_t WORDMAP[] = {\n\t0, 4, 8,\n};\n"
		assert.Equal(t, want, string(csrc.Wordmap([]uint32{0, 4, 8})))
	})

	t.Run("wraps_every_eight", func(t *testing.T) {
		t.Parallel()
		offsets := make([]uint32, 17)
		for i := range offsets {
			offsets[i] = uint32(i * 5)
		}
		got := string(csrc.Wordmap(offsets))
		assert.Equal(t, 3, strings.Count(got, "\n\t"))
		assert.True(t, strings.HasSuffix(got, "80,\n};\n"))
	})
}

func TestGuidetable(t *testing.T) {
	t.Parallel()

	want := wantHeader +
		"const uint16_t GUIDETABLE[] = {\n\t7, 7, 0,\n};\n"
	assert.Equal(t, want, string(csrc.Guidetable([]uint16{7, 7, 0})))
}
