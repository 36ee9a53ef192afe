package dateonly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	parsed, err := Parse("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, "2024-03-15", Format(parsed))
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		parsed, err := Parse(input)
		require.NoError(t, err)
		assert.Nil(t, parsed)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{"15-03-2024", "2024/03/15", "next tuesday", "2024-13-40"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestFormatNil(t *testing.T) {
	assert.Equal(t, "", Format(nil))
}
