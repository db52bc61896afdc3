package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = New(true, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1)) // debug level
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("  ab  ", 5))
}
