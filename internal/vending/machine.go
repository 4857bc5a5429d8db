// Package vending implements the transaction engine of a coin-operated vending
// machine: inserted funds, slot inventory, purchase validation, restocking,
// repricing, payment collection and the per-machine transaction summary.
//
// A single Machine type serves both the regular and the special variant.
// Every purchase goes through Purchase with an ordered list of slots; a
// regular machine accepts exactly one slot per order while a special machine
// processes each selection in turn against the balance left by the previous
// ones, without rolling back earlier selections when a later one fails.
//
// The engine is not safe for concurrent use. Callers sharing a Machine across
// goroutines must guard it themselves.
package vending

import (
	"fmt"

	"vending_machine/internal/models"

	"github.com/shopspring/decimal"
)

// RestockQuantity is the number of units every slot holds after a restock
// and when a machine is created.
const RestockQuantity = 10

// Kind selects the purchase behaviour of a Machine.
type Kind int

const (
	// Regular machines vend a single slot per order.
	Regular Kind = iota
	// Special machines combine several slots into one order.
	Special
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Special:
		return "special"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Machine owns a FundsStore and an ordered list of slots and keeps a tally of
// units sold per item name.
type Machine struct {
	kind    Kind
	funds   *FundsStore
	slots   []models.Slot
	names   []string       // summary order, first appearance in slots
	summary map[string]int // units sold per item name
}

// NewMachine creates a machine of the given kind with one slot per item,
// each stocked with RestockQuantity units. Items are copied so that
// repricing never leaks outside the machine.
func NewMachine(kind Kind, items []models.Item) *Machine {
	m := &Machine{
		kind:    kind,
		funds:   NewFundsStore(),
		slots:   make([]models.Slot, 0, len(items)),
		names:   make([]string, 0, len(items)),
		summary: make(map[string]int, len(items)),
	}

	for _, item := range items {
		m.slots = append(m.slots, models.Slot{Item: item, Quantity: RestockQuantity})
		if _, ok := m.summary[item.Name]; !ok {
			m.summary[item.Name] = 0
			m.names = append(m.names, item.Name)
		}
	}

	return m
}

// Kind reports whether the machine is regular or special.
func (m *Machine) Kind() Kind {
	return m.kind
}

// SlotCount returns the number of slots.
func (m *Machine) SlotCount() int {
	return len(m.slots)
}

// slot resolves a 1-based slot number.
func (m *Machine) slot(index int) (*models.Slot, error) {
	if index < 1 || index > len(m.slots) {
		return nil, fmt.Errorf("%w: %d (machine has %d slots)", ErrInvalidSlot, index, len(m.slots))
	}
	return &m.slots[index-1], nil
}

func view(index int, slot models.Slot) models.SlotView {
	return models.SlotView{
		Index:    index,
		Name:     slot.Item.Name,
		Price:    slot.Item.Price,
		Calories: slot.Item.Calories,
		Quantity: slot.Quantity,
	}
}

// ShowItems returns one display row per slot, in slot order.
func (m *Machine) ShowItems() []models.SlotView {
	views := make([]models.SlotView, 0, len(m.slots))
	for i, slot := range m.slots {
		views = append(views, view(i+1, slot))
	}
	return views
}

// ChangeItemPrice sets a new price on the item of the given slot.
func (m *Machine) ChangeItemPrice(index int, price decimal.Decimal) (models.SlotView, error) {
	slot, err := m.slot(index)
	if err != nil {
		return models.SlotView{}, err
	}
	if price.IsNegative() {
		return models.SlotView{}, fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}

	slot.Item.Price = price
	return view(index, *slot), nil
}

// AddFunds inserts every amount into the machine and returns the new total.
// All amounts are validated first; a rejected amount leaves the total as it was.
func (m *Machine) AddFunds(amounts ...decimal.Decimal) (decimal.Decimal, error) {
	for _, amount := range amounts {
		if !amount.IsPositive() {
			return m.funds.Total(), fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
		}
	}
	for _, amount := range amounts {
		if err := m.funds.Add(amount); err != nil {
			return m.funds.Total(), err
		}
	}
	return m.funds.Total(), nil
}

// ReplenishMoney adds operator change stock and returns the new total.
func (m *Machine) ReplenishMoney(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := m.funds.Replenish(amount); err != nil {
		return m.funds.Total(), err
	}
	return m.funds.Total(), nil
}

// Funds returns the funds currently held.
func (m *Machine) Funds() decimal.Decimal {
	return m.funds.Total()
}

// BuyItem vends one unit from the given slot and returns the remaining balance.
func (m *Machine) BuyItem(index int) (decimal.Decimal, error) {
	_, err := m.buy(index)
	return m.funds.Total(), err
}

// Purchase processes an order of slot selections in sequence. Each selection
// is checked against the balance left by the previous ones and its outcome is
// recorded in the receipt; a failed selection neither stops the order nor
// undoes earlier ones. The returned error is set only when the order as a
// whole is rejected, in which case nothing was processed.
func (m *Machine) Purchase(indices []int) (models.Receipt, error) {
	receipt := models.Receipt{Special: m.kind == Special, Balance: m.funds.Total()}

	if len(indices) == 0 {
		return receipt, ErrEmptyOrder
	}
	if m.kind == Regular && len(indices) > 1 {
		return receipt, fmt.Errorf("%w: got %d slots", ErrSingleItemOnly, len(indices))
	}

	receipt.Lines = make([]models.PurchaseLine, 0, len(indices))
	for _, index := range indices {
		name, err := m.buy(index)
		receipt.Lines = append(receipt.Lines, models.PurchaseLine{Slot: index, Item: name, Err: err})
	}

	receipt.Balance = m.funds.Total()
	return receipt, nil
}

// buy runs the three purchase checks for one slot and applies the sale.
func (m *Machine) buy(index int) (string, error) {
	slot, err := m.slot(index)
	if err != nil {
		return "", err
	}

	name := slot.Item.Name
	if m.funds.Total().LessThan(slot.Item.Price) {
		return name, fmt.Errorf("%w: %s costs %s, balance %s", ErrInsufficientFunds, name, slot.Item.Price, m.funds.Total())
	}
	if slot.Quantity == 0 {
		return name, fmt.Errorf("%w: %s", ErrOutOfStock, name)
	}

	if err := m.funds.Debit(slot.Item.Price); err != nil {
		return name, err
	}
	slot.Quantity--
	m.summary[name]++

	return name, nil
}

// Restock refills every slot to RestockQuantity. Funds and the transaction
// summary are not affected.
func (m *Machine) Restock() {
	for i := range m.slots {
		m.slots[i].Quantity = RestockQuantity
	}
}

// CollectPayment empties the funds store and returns the collected amount.
func (m *Machine) CollectPayment() decimal.Decimal {
	return m.funds.Reset()
}

// TransactionSummary reports units sold per item name and the funds held.
func (m *Machine) TransactionSummary() models.Summary {
	sold := make([]models.SoldCount, 0, len(m.names))
	for _, name := range m.names {
		sold = append(sold, models.SoldCount{Name: name, Sold: m.summary[name]})
	}
	return models.Summary{Sold: sold, Funds: m.funds.Total()}
}
