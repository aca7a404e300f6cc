//go:build unit

package bag_test

import (
	"strings"
	"testing"

	"bagtrack/internal/domain/bag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBagTag(t *testing.T) {
	tag, err := bag.GenerateBagTag()
	require.NoError(t, err)

	value := tag.Value()
	assert.Len(t, value, 8)
	assert.True(t, strings.HasPrefix(value, "B-"))
	assert.NotContains(t, value[2:], "0")
	assert.NotContains(t, value[2:], "O")
	assert.NotContains(t, value[2:], "1")
	assert.NotContains(t, value[2:], "I")

	assert.Equal(t, "bag:"+value, tag.QRPayload())
}

func TestNewBagTag(t *testing.T) {
	t.Run("accepts and normalizes valid tags", func(t *testing.T) {
		tag, err := bag.NewBagTag(" b-7kq2mx ")
		require.NoError(t, err)
		assert.Equal(t, "B-7KQ2MX", tag.Value())
	})

	t.Run("rejects malformed tags", func(t *testing.T) {
		for _, s := range []string{"", "B-", "B-7KQ2M", "B-7KQ2MXX", "X-7KQ2MX", "B-7KQ0MX"} {
			_, err := bag.NewBagTag(s)
			assert.ErrorIs(t, err, bag.ErrInvalidBagTag, s)
		}
	})
}

func TestNewNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		note, err := bag.NewNote("  left at reception  ")
		require.NoError(t, err)
		assert.Equal(t, "left at reception", note.String())
		assert.False(t, note.IsEmpty())
	})

	t.Run("empty is valid and empty", func(t *testing.T) {
		note, err := bag.NewNote("")
		require.NoError(t, err)
		assert.True(t, note.IsEmpty())
	})

	t.Run("over the length cap rejected", func(t *testing.T) {
		_, err := bag.NewNote(strings.Repeat("x", bag.MaxNoteLength+1))
		assert.ErrorIs(t, err, bag.ErrNoteTooLong)
	})

	t.Run("exactly at the cap accepted", func(t *testing.T) {
		_, err := bag.NewNote(strings.Repeat("x", bag.MaxNoteLength))
		assert.NoError(t, err)
	})
}
