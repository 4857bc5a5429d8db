// Package models defines the data structures shared by the vending engine,
// the session layer and the console service. It includes catalog items,
// inventory slots and the read-only views produced for reporting.
package models

import "github.com/shopspring/decimal"

// Item represents a product that can be loaded into a vending machine slot.
// Name and Calories are fixed once created; Price may be changed by an operator.
type Item struct {
	Name     string
	Price    decimal.Decimal
	Calories int
}

// Slot binds one Item to the number of units still available in it.
type Slot struct {
	Item     Item
	Quantity int
}

// SlotView is a display row for a slot. Index is 1-based.
type SlotView struct {
	Index    int
	Name     string
	Price    decimal.Decimal
	Calories int
	Quantity int
}

// SoldCount holds the number of units of one item sold during a session.
type SoldCount struct {
	Name string
	Sold int
}

// Summary is the transaction report of a machine: units sold per item name,
// in slot order, and the funds currently held.
type Summary struct {
	Sold  []SoldCount
	Funds decimal.Decimal
}

// PurchaseLine is the outcome of one slot selection inside an order.
// Item is empty when the slot could not be resolved.
type PurchaseLine struct {
	Slot int
	Item string
	Err  error
}

// Receipt collects the outcome of every selection of an order and the
// balance left once the whole order has been processed.
type Receipt struct {
	Special bool
	Lines   []PurchaseLine
	Balance decimal.Decimal
}

// Vended returns the number of selections that were dispensed.
func (r Receipt) Vended() int {
	n := 0
	for _, line := range r.Lines {
		if line.Err == nil {
			n++
		}
	}
	return n
}
