package bag

import (
	"github.com/shopspring/decimal"
)

// Quote is the derived pricing block of a bag. It is computed once at
// creation and never recomputed; catalog price edits must not reach it.
type Quote struct {
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

type Calculator interface {
	Price(items []Item) Quote
}

// TaxedCalculator applies a uniform tax rate with half-up rounding to two
// decimal places, so per-line float drift cannot accumulate.
type TaxedCalculator struct {
	taxRate decimal.Decimal
}

func NewTaxedCalculator(taxRate decimal.Decimal) *TaxedCalculator {
	return &TaxedCalculator{taxRate: taxRate}
}

func (c *TaxedCalculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

func (c *TaxedCalculator) Price(items []Item) Quote {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	subtotal = subtotal.Round(2)

	taxAmount := subtotal.Mul(c.taxRate).Round(2)

	return Quote{
		Subtotal:  subtotal,
		TaxRate:   c.taxRate,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}
