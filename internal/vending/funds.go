package vending

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FundsStore holds the money currently inserted into a machine as a single
// running total. The total never drops below zero.
type FundsStore struct {
	total decimal.Decimal
}

// NewFundsStore returns an empty FundsStore.
func NewFundsStore() *FundsStore {
	return &FundsStore{total: decimal.Zero}
}

// Add increases the total by amount. The amount must be positive.
func (f *FundsStore) Add(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	f.total = f.total.Add(amount)
	return nil
}

// Replenish tops up the float with operator-supplied change.
func (f *FundsStore) Replenish(amount decimal.Decimal) error {
	return f.Add(amount)
}

// Total returns the current funds total.
func (f *FundsStore) Total() decimal.Decimal {
	return f.total
}

// Debit subtracts amount from the total. It fails with ErrInsufficientFunds
// when amount exceeds the total, leaving the total unchanged.
func (f *FundsStore) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(f.total) {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, amount, f.total)
	}
	f.total = f.total.Sub(amount)
	return nil
}

// Reset empties the store and returns the amount it held.
func (f *FundsStore) Reset() decimal.Decimal {
	held := f.total
	f.total = decimal.Zero
	return held
}
