//go:build unit

package bag_test

import (
	"testing"

	"bagtrack/internal/domain/bag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPipeline(t *testing.T) {
	t.Run("canonical order", func(t *testing.T) {
		expected := []bag.Status{
			bag.StatusCreated,
			bag.StatusDropped,
			bag.StatusPickedUp,
			bag.StatusWashing,
			bag.StatusDrying,
			bag.StatusReady,
			bag.StatusOutForDelivery,
			bag.StatusDelivered,
		}
		assert.Equal(t, expected, bag.AllStatuses())
	})

	t.Run("next walks every stage in order", func(t *testing.T) {
		all := bag.AllStatuses()
		current := all[0]
		for _, want := range all[1:] {
			next, ok := current.Next()
			require.True(t, ok)
			assert.Equal(t, want, next)
			current = next
		}

		_, ok := current.Next()
		assert.False(t, ok, "terminal status has no next stage")
	})

	t.Run("terminal", func(t *testing.T) {
		for _, s := range bag.AllStatuses() {
			assert.Equal(t, s == bag.StatusDelivered, s.IsTerminal(), s.String())
		}
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	all := bag.AllStatuses()

	t.Run("single forward step allowed", func(t *testing.T) {
		for i := 0; i < len(all)-1; i++ {
			assert.True(t, all[i].CanTransitionTo(all[i+1]),
				"%s -> %s", all[i], all[i+1])
		}
	})

	t.Run("same status re-post allowed", func(t *testing.T) {
		for _, s := range all {
			assert.True(t, s.CanTransitionTo(s), s.String())
		}
	})

	t.Run("backward moves rejected", func(t *testing.T) {
		for i := 1; i < len(all); i++ {
			for j := 0; j < i; j++ {
				assert.False(t, all[i].CanTransitionTo(all[j]),
					"%s -> %s", all[i], all[j])
			}
		}
	})

	t.Run("skips rejected", func(t *testing.T) {
		for i := 0; i < len(all); i++ {
			for j := i + 2; j < len(all); j++ {
				assert.False(t, all[i].CanTransitionTo(all[j]),
					"%s -> %s", all[i], all[j])
			}
		}
	})

	t.Run("unknown statuses rejected", func(t *testing.T) {
		assert.False(t, bag.StatusCreated.CanTransitionTo(bag.Status("folded")))
		assert.False(t, bag.Status("folded").CanTransitionTo(bag.StatusCreated))
	})
}

func TestNewStatus(t *testing.T) {
	for _, s := range bag.AllStatuses() {
		parsed, err := bag.NewStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := bag.NewStatus("unknown")
	assert.ErrorIs(t, err, bag.ErrInvalidStatus)

	_, err = bag.NewStatus("")
	assert.ErrorIs(t, err, bag.ErrInvalidStatus)
}
