//go:build unit

package bag_test

import (
	"testing"

	"bagtrack/internal/domain/bag"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, price string, qty int) bag.Item {
	t.Helper()
	item, err := bag.NewItem(uuid.New(), qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestTaxedCalculatorPrice(t *testing.T) {
	calc := bag.NewTaxedCalculator(decimal.RequireFromString("0.15"))

	t.Run("reference quote", func(t *testing.T) {
		quote := calc.Price([]bag.Item{
			mustItem(t, "10.00", 2),
			mustItem(t, "5.00", 1),
		})

		assert.Equal(t, "25.00", quote.Subtotal.StringFixed(2))
		assert.Equal(t, "0.15", quote.TaxRate.String())
		assert.Equal(t, "3.75", quote.TaxAmount.StringFixed(2))
		assert.Equal(t, "28.75", quote.Total.StringFixed(2))
	})

	t.Run("tax rounds half up to two decimals", func(t *testing.T) {
		// 0.33 * 0.15 = 0.0495 -> 0.05
		quote := calc.Price([]bag.Item{mustItem(t, "0.33", 1)})

		assert.Equal(t, "0.33", quote.Subtotal.StringFixed(2))
		assert.Equal(t, "0.05", quote.TaxAmount.StringFixed(2))
		assert.Equal(t, "0.38", quote.Total.StringFixed(2))
	})

	t.Run("no items yields a zero quote", func(t *testing.T) {
		quote := calc.Price(nil)

		assert.True(t, quote.Subtotal.IsZero())
		assert.True(t, quote.TaxAmount.IsZero())
		assert.True(t, quote.Total.IsZero())
	})

	t.Run("identical inputs always produce identical quotes", func(t *testing.T) {
		items := []bag.Item{
			mustItem(t, "7.77", 3),
			mustItem(t, "12.49", 2),
		}
		first := calc.Price(items)
		second := calc.Price(items)

		assert.True(t, first.Subtotal.Equal(second.Subtotal))
		assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
		assert.True(t, first.Total.Equal(second.Total))
	})

	t.Run("total equals subtotal plus tax", func(t *testing.T) {
		quote := calc.Price([]bag.Item{
			mustItem(t, "3.99", 7),
			mustItem(t, "0.01", 13),
		})
		assert.True(t, quote.Total.Equal(quote.Subtotal.Add(quote.TaxAmount)))
	})
}

func TestNewItem(t *testing.T) {
	price := decimal.RequireFromString("4.50")

	t.Run("line total is price times quantity", func(t *testing.T) {
		item, err := bag.NewItem(uuid.New(), 3, price)
		require.NoError(t, err)
		assert.Equal(t, "13.50", item.LineTotal.StringFixed(2))
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := bag.NewItem(uuid.New(), 0, price)
		assert.ErrorIs(t, err, bag.ErrInvalidQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := bag.NewItem(uuid.New(), -2, price)
		assert.ErrorIs(t, err, bag.ErrInvalidQuantity)
	})
}
