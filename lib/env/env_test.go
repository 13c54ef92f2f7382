package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libcobalt/cobaltgen/lib/env"
)

func TestTimeout(t *testing.T) {
	t.Setenv("COBALT_TIMEOUT", "")
	_, has := env.Timeout()
	assert.False(t, has)

	t.Setenv("COBALT_TIMEOUT", "90")
	seconds, has := env.Timeout()
	assert.True(t, has)
	assert.Equal(t, 90, seconds)

	t.Setenv("COBALT_TIMEOUT", "soon")
	_, has = env.Timeout()
	assert.False(t, has)
}
