// Package core provides money parsing and handling utilities.
//
// This file contains the conversions between raw numeric input and the
// decimal amounts stored on expenses.
package core

import (
	"math"

	"github.com/shopspring/decimal"
)

// NewAmount converts a float to a decimal amount.
//
// NaN, infinities, zero and negative values are rejected with ErrInvalidAmount.
// The conversion keeps the shortest decimal representation of the float, so
// 0.1 becomes exactly 0.1 and sums do not accumulate binary rounding noise.
//
// Examples:
//   NewAmount(3.5)  -> 3.5, nil
//   NewAmount(0)    -> 0, ErrInvalidAmount
//   NewAmount(-3)   -> 0, ErrInvalidAmount
func NewAmount(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return decimal.NewFromFloat(f), nil
}

// Sum adds up the amounts of the given expenses. An empty slice sums to zero.
func Sum(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// FormatAmount renders an amount with half-up rounding to the given places.
func FormatAmount(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}
