package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/foodshop/app/models"
)

// Business-rule violations reported by CheckTotals.
var (
	ErrSubtotalMismatch = errors.New("Subtotal does not match items total")
	ErrTotalMismatch    = errors.New("Total does not match subtotal + tax")
)

// totalsTolerance is the largest accepted difference, inclusive.
var totalsTolerance = decimal.New(1, -2)

// CheckTotals verifies that the items sum to the subtotal and that subtotal
// plus tax equals the total, each within one cent.
func CheckTotals(o models.Order) error {
	computed := decimal.Zero
	for _, it := range o.Items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		computed = computed.Add(line)
	}

	subtotal := decimal.NewFromFloat(o.Subtotal)
	if computed.Sub(subtotal).Abs().GreaterThan(totalsTolerance) {
		return ErrSubtotalMismatch
	}

	total := subtotal.Add(decimal.NewFromFloat(o.Tax))
	if total.Sub(decimal.NewFromFloat(o.Total)).Abs().GreaterThan(totalsTolerance) {
		return ErrTotalMismatch
	}
	return nil
}
