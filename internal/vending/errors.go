package vending

import "errors"

// Errors reported by the vending engine. None of them is fatal: the machine
// state is left untouched and the caller decides how to continue.
var (
	// ErrInvalidSlot indicates a slot number outside [1, slot count].
	ErrInvalidSlot = errors.New("vending: invalid slot")
	// ErrInvalidPrice indicates a negative item price.
	ErrInvalidPrice = errors.New("vending: invalid price")
	// ErrInvalidAmount indicates a non-positive funds amount.
	ErrInvalidAmount = errors.New("vending: invalid amount")
	// ErrInsufficientFunds indicates the funds total is below the requested amount.
	ErrInsufficientFunds = errors.New("vending: insufficient funds")
	// ErrOutOfStock indicates the selected slot is empty.
	ErrOutOfStock = errors.New("vending: out of stock")
	// ErrEmptyOrder indicates a purchase request without any slot selection.
	ErrEmptyOrder = errors.New("vending: empty order")
	// ErrSingleItemOnly indicates a multi-slot order sent to a regular machine.
	ErrSingleItemOnly = errors.New("vending: regular machine vends one item per order")
)
