//go:build unit

package bag_test

import (
	"testing"
	"time"

	"bagtrack/internal/domain/bag"
	"bagtrack/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagCreation(t *testing.T) {
	b, err := builder.NewBagBuilder().BuildDomain()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, bag.StatusCreated, b.Status())
	assert.Equal(t, int64(1), b.Version())
	assert.Len(t, b.Items(), 2)

	require.Len(t, b.Events(), 1, "timeline starts with a synthetic created event")
	assert.Equal(t, bag.StatusCreated, b.Events()[0].Status)
	assert.Nil(t, b.Events()[0].Note)

	assert.Equal(t, "28.75", b.Quote().Total.StringFixed(2))
	assert.Equal(t, "bag:"+b.Tag().Value(), b.QRCode())
}

func TestBagTransition(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("forward step appends one event and bumps version", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		ev, err := b.Transition(bag.StatusDropped, bag.Note{}, now)
		require.NoError(t, err)

		assert.Equal(t, bag.StatusDropped, b.Status())
		assert.Equal(t, int64(2), b.Version())
		assert.Len(t, b.Events(), 2)
		assert.Equal(t, bag.StatusDropped, ev.Status)
		assert.Equal(t, now, ev.CreatedAt)
		assert.Nil(t, ev.Note)
	})

	t.Run("same status re-post appends an annotation event", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		note, err := bag.NewNote("weighed at branch")
		require.NoError(t, err)

		ev, err := b.Transition(bag.StatusCreated, note, now)
		require.NoError(t, err)

		assert.Equal(t, bag.StatusCreated, b.Status())
		assert.Len(t, b.Events(), 2)
		require.NotNil(t, ev.Note)
		assert.Equal(t, "weighed at branch", *ev.Note)
	})

	t.Run("skipping a stage is rejected without side effects", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = b.Transition(bag.StatusWashing, bag.Note{}, now)
		assert.ErrorIs(t, err, bag.ErrInvalidTransition)
		assert.Equal(t, bag.StatusCreated, b.Status())
		assert.Equal(t, int64(1), b.Version())
		assert.Len(t, b.Events(), 1)
	})

	t.Run("backward move is rejected", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = b.Transition(bag.StatusDropped, bag.Note{}, now)
		require.NoError(t, err)
		_, err = b.Transition(bag.StatusPickedUp, bag.Note{}, now)
		require.NoError(t, err)

		_, err = b.Transition(bag.StatusDropped, bag.Note{}, now)
		assert.ErrorIs(t, err, bag.ErrInvalidTransition)
	})

	t.Run("full pipeline walk", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		all := bag.AllStatuses()
		for _, target := range all[1:] {
			_, err := b.Transition(target, bag.Note{}, now)
			require.NoError(t, err, target.String())
		}

		assert.Equal(t, bag.StatusDelivered, b.Status())
		assert.True(t, b.Status().IsTerminal())
		assert.Len(t, b.Events(), len(all))
		assert.Equal(t, int64(len(all)), b.Version())
	})
}

func TestBagUpdateLocations(t *testing.T) {
	now := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("allowed while created or dropped", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		newPickup := uuid.New()
		require.NoError(t, b.UpdateLocations(&newPickup, nil))
		assert.Equal(t, newPickup, b.PickupLocationID())

		_, err = b.Transition(bag.StatusDropped, bag.Note{}, now)
		require.NoError(t, err)

		newDelivery := uuid.New()
		require.NoError(t, b.UpdateLocations(nil, &newDelivery))
		assert.Equal(t, newDelivery, b.DeliveryLocationID())
	})

	t.Run("locked once picked up", func(t *testing.T) {
		b, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = b.Transition(bag.StatusDropped, bag.Note{}, now)
		require.NoError(t, err)
		_, err = b.Transition(bag.StatusPickedUp, bag.Note{}, now)
		require.NoError(t, err)

		before := b.PickupLocationID()
		other := uuid.New()
		err = b.UpdateLocations(&other, nil)
		assert.ErrorIs(t, err, bag.ErrLocationLockedAfterPickup)
		assert.Equal(t, before, b.PickupLocationID())
	})
}

func TestBagOwnership(t *testing.T) {
	customerID := uuid.New()
	b, err := builder.NewBagBuilder().With(func(bb *builder.BagBuilder) {
		bb.CustomerID = customerID
	}).BuildDomain()
	require.NoError(t, err)

	assert.True(t, b.IsOwnedBy(customerID))
	assert.False(t, b.IsOwnedBy(uuid.New()))
}
