//go:build unit

package bag_test

import (
	"testing"

	"bagtrack/internal/domain/bag"
	"bagtrack/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateBag(t *testing.T) {
	t.Run("prices are snapshotted from the catalog", func(t *testing.T) {
		b, err := builder.NewBagBuilder().
			WithItems(
				builder.ItemSpec{UnitPrice: "10.00", Quantity: 2},
				builder.ItemSpec{UnitPrice: "5.00", Quantity: 1},
			).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "25.00", b.Quote().Subtotal.StringFixed(2))
		assert.Equal(t, "3.75", b.Quote().TaxAmount.StringFixed(2))
		assert.Equal(t, "28.75", b.Quote().Total.StringFixed(2))
	})

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := builder.NewBagBuilder().WithItems().BuildDomain()
		assert.ErrorIs(t, err, bag.ErrEmptyOrder)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := builder.NewBagBuilder().
			WithItems(builder.ItemSpec{UnitPrice: "10.00", Quantity: 0}).
			BuildDomain()
		assert.ErrorIs(t, err, bag.ErrInvalidQuantity)
	})

	t.Run("unknown service item rejected", func(t *testing.T) {
		pickup, err := builder.NewLocationBuilder().BuildDomain()
		require.NoError(t, err)
		delivery, err := builder.NewLocationBuilder().BuildDomain()
		require.NoError(t, err)

		factory := bag.NewFactory(nil, nil)
		_, err = factory.CreateBag(uuid.New(), pickup, delivery,
			[]bag.ItemRequest{{ServiceItemID: uuid.New(), Quantity: 1}},
			nil)
		assert.ErrorIs(t, err, bag.ErrUnknownServiceItem)
	})

	t.Run("inactive pickup location rejected", func(t *testing.T) {
		inactive, err := builder.NewLocationBuilder().
			With(func(lb *builder.LocationBuilder) { lb.Inactive = true }).
			BuildDomain()
		require.NoError(t, err)
		active, err := builder.NewLocationBuilder().BuildDomain()
		require.NoError(t, err)

		factory := bag.NewFactory(nil, nil)
		_, err = factory.CreateBag(uuid.New(), inactive, active, nil, nil)
		assert.ErrorIs(t, err, bag.ErrInactiveLocation)
	})

	t.Run("fresh bags get distinct tags", func(t *testing.T) {
		first, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewBagBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.Tag().Value(), second.Tag().Value())
	})
}

func TestFactoryWithTag(t *testing.T) {
	b, err := builder.NewBagBuilder().BuildDomain()
	require.NoError(t, err)

	replacement, err := bag.NewBagTag("B-ABCDEF")
	require.NoError(t, err)

	factory := bag.NewFactory(nil, nil)
	clone := factory.WithTag(b, replacement)

	assert.Equal(t, "B-ABCDEF", clone.Tag().Value())
	assert.Equal(t, b.ID(), clone.ID())
	assert.NotEqual(t, b.Tag().Value(), clone.Tag().Value())
}
