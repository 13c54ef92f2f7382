package cobaltcli

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseByteOrder(t *testing.T) {
	order, err := parseByteOrder("little")
	assert.NoError(t, err)
	assert.Equal(t, binary.ByteOrder(binary.LittleEndian), order)

	order, err = parseByteOrder("big")
	assert.NoError(t, err)
	assert.Equal(t, binary.ByteOrder(binary.BigEndian), order)

	_, err = parseByteOrder("middle")
	assert.EqualError(t, err, `invalid --endian value "middle". Expected "little" or "big"`)
}
