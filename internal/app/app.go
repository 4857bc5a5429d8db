// Package app provides the session logic that sits between the console and the vending engine.
// It owns the currently active machine, replaces it whenever a new one is created,
// guards the maintenance operations behind an optional operator PIN and logs every
// state change through the logger package.
package app

import (
	"errors"
	"fmt"

	"vending_machine/internal/models"
	"vending_machine/internal/pkg/logger"
	"vending_machine/internal/pkg/security"
	"vending_machine/internal/vending"

	"github.com/shopspring/decimal"
)

// Predefined errors for session-level failures.
var (
	// ErrNoMachine indicates that an operation was requested before any machine was created.
	ErrNoMachine = errors.New("app: no vending machine available")
	// ErrOperatorLocked indicates a maintenance operation attempted without the operator PIN.
	ErrOperatorLocked = errors.New("app: operator PIN required")
	// ErrWrongPIN indicates that the supplied operator PIN does not match.
	ErrWrongPIN = errors.New("app: incorrect operator PIN")
)

//go:generate mockgen -destination=mocks/mock_machine.go -package=mocks vending_machine/internal/app Machine

// Machine is the contract the session relies on. *vending.Machine implements it.
type Machine interface {
	Kind() vending.Kind
	ShowItems() []models.SlotView
	AddFunds(amounts ...decimal.Decimal) (decimal.Decimal, error)
	Purchase(slots []int) (models.Receipt, error)
	Restock()
	TransactionSummary() models.Summary
	ChangeItemPrice(slot int, price decimal.Decimal) (models.SlotView, error)
	CollectPayment() decimal.Decimal
	ReplenishMoney(amount decimal.Decimal) (decimal.Decimal, error)
}

var _ Machine = (*vending.Machine)(nil)

// Factory builds a machine of the given kind stocked with items.
type Factory func(kind vending.Kind, items []models.Item) Machine

// Option configures an App.
type Option func(*App)

// WithMachineFactory replaces the default vending.NewMachine factory.
func WithMachineFactory(factory Factory) Option {
	return func(app *App) {
		if factory != nil {
			app.newMachine = factory
		}
	}
}

// WithOperatorPIN locks maintenance operations behind the PIN whose bcrypt hash is given.
// An empty hash leaves them unlocked.
func WithOperatorPIN(hash string) Option {
	return func(app *App) {
		app.pinHash = hash
	}
}

// App encapsulates the session state: the catalog new machines are stocked from,
// the active machine if any, and the operator lock.
type App struct {
	catalog    []models.Item
	newMachine Factory
	machine    Machine
	pinHash    string
	unlocked   bool
	log        *logger.Logger
}

// NewApp creates and returns a new App with no active machine.
func NewApp(catalog []models.Item, log *logger.Logger, opts ...Option) *App {
	app := &App{
		catalog: catalog,
		newMachine: func(kind vending.Kind, items []models.Item) Machine {
			return vending.NewMachine(kind, items)
		},
		log: log,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// CreateMachine discards the active machine, if any, and starts a new one of the given kind.
func (app *App) CreateMachine(kind vending.Kind) {
	app.machine = app.newMachine(kind, app.catalog)
	app.unlocked = false
	app.log.Sugar().Infof("Created %s vending machine with %d slots", kind, len(app.catalog))
}

// ActiveMachine returns the kind of the active machine.
func (app *App) ActiveMachine() (vending.Kind, error) {
	if app.machine == nil {
		return vending.Regular, ErrNoMachine
	}
	return app.machine.Kind(), nil
}

// OperatorLocked reports whether maintenance operations currently need the operator PIN.
func (app *App) OperatorLocked() bool {
	return app.pinHash != "" && !app.unlocked
}

// Unlock verifies the operator PIN and opens maintenance operations until the session ends.
func (app *App) Unlock(pin string) error {
	if app.pinHash == "" {
		return nil
	}
	if err := security.CheckPIN(app.pinHash, pin); err != nil {
		app.log.Sugar().Warnf("Operator unlock rejected: %s", err)
		return ErrWrongPIN
	}
	app.unlocked = true
	return nil
}

// EndSession closes maintenance access again when the operator leaves the machine menu.
func (app *App) EndSession() {
	app.unlocked = false
}

func (app *App) active() (Machine, error) {
	if app.machine == nil {
		return nil, ErrNoMachine
	}
	return app.machine, nil
}

func (app *App) operator() (Machine, error) {
	m, err := app.active()
	if err != nil {
		return nil, err
	}
	if app.OperatorLocked() {
		return nil, ErrOperatorLocked
	}
	return m, nil
}

// ProcessShowItems lists the slots of the active machine.
func (app *App) ProcessShowItems() ([]models.SlotView, error) {
	m, err := app.active()
	if err != nil {
		return nil, err
	}
	return m.ShowItems(), nil
}

// ProcessAddFunds inserts the given denominations and returns the new balance.
func (app *App) ProcessAddFunds(amounts []decimal.Decimal) (decimal.Decimal, error) {
	m, err := app.active()
	if err != nil {
		return decimal.Zero, err
	}

	total, err := m.AddFunds(amounts...)
	if err != nil {
		return total, err
	}

	app.log.Sugar().Debugf("Added %d coins, balance %s", len(amounts), total)
	return total, nil
}

// ProcessBuy runs an order against the active machine.
func (app *App) ProcessBuy(slots []int) (models.Receipt, error) {
	m, err := app.active()
	if err != nil {
		return models.Receipt{}, err
	}

	receipt, err := m.Purchase(slots)
	if err != nil {
		return receipt, err
	}

	for _, line := range receipt.Lines {
		if line.Err != nil {
			app.log.Sugar().Infof("Slot %d not vended: %s", line.Slot, line.Err)
			continue
		}
		app.log.Sugar().Infof("Vended %s from slot %d", line.Item, line.Slot)
	}

	return receipt, nil
}

// ProcessSummary returns the transaction summary of the active machine.
func (app *App) ProcessSummary() (models.Summary, error) {
	m, err := app.active()
	if err != nil {
		return models.Summary{}, err
	}
	return m.TransactionSummary(), nil
}

// ProcessRestock refills every slot of the active machine.
func (app *App) ProcessRestock() error {
	m, err := app.operator()
	if err != nil {
		return err
	}

	m.Restock()
	app.log.Sugar().Infof("Restocked all slots to %d units", vending.RestockQuantity)
	return nil
}

// ProcessChangePrice reprices the item in the given slot.
func (app *App) ProcessChangePrice(slot int, price decimal.Decimal) (models.SlotView, error) {
	m, err := app.operator()
	if err != nil {
		return models.SlotView{}, err
	}

	updated, err := m.ChangeItemPrice(slot, price)
	if err != nil {
		return updated, err
	}

	app.log.Sugar().Infof("Price of %s changed to %s", updated.Name, updated.Price)
	return updated, nil
}

// ProcessCollect empties the funds of the active machine and returns the collected amount.
func (app *App) ProcessCollect() (decimal.Decimal, error) {
	m, err := app.operator()
	if err != nil {
		return decimal.Zero, err
	}

	collected := m.CollectPayment()
	app.log.Sugar().Infof("Collected %s from the machine", collected)
	return collected, nil
}

// ProcessReplenish adds change stock to the active machine and returns the new balance.
func (app *App) ProcessReplenish(amount decimal.Decimal) (decimal.Decimal, error) {
	m, err := app.operator()
	if err != nil {
		return decimal.Zero, err
	}

	total, err := m.ReplenishMoney(amount)
	if err != nil {
		return total, fmt.Errorf("replenish %s: %w", amount, err)
	}

	app.log.Sugar().Infof("Replenished money box by %s", amount)
	return total, nil
}
