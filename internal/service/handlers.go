// Package service contains the console front end of the vending machine.
// It renders the menus, parses the numbers typed by the user, calls the
// session logic in the app package and reports every outcome as text.
// Parse failures and engine errors are reported and the menu is shown again.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"vending_machine/internal/app"
	"vending_machine/internal/models"
	"vending_machine/internal/pkg/logger"
	"vending_machine/internal/vending"

	"github.com/shopspring/decimal"
)

// errInvalidInput indicates a line that could not be parsed.
var errInvalidInput = errors.New("service: invalid input")

// amountPattern accepts plain currency text: at most nine integer digits and two decimals.
var amountPattern = regexp.MustCompile(`^-?\d{1,9}(\.\d{1,2})?$`)

// handlers aggregates dependencies needed by the menu options,
// including the session logic, the input reader and the logger.
type handlers struct {
	app      *app.App
	readLine func(ctx context.Context) (string, error)
	out      io.Writer
	currency string
	log      *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided dependencies.
func newHandlers(app *app.App, readLine func(ctx context.Context) (string, error), out io.Writer, currency string, l *logger.Logger) *handlers {
	return &handlers{app: app, readLine: readLine, out: out, currency: currency, log: l}
}

func (handlers *handlers) print(text string) {
	fmt.Fprint(handlers.out, text)
}

func (handlers *handlers) println(text string) {
	fmt.Fprintln(handlers.out, text)
}

func (handlers *handlers) printf(format string, args ...any) {
	fmt.Fprintf(handlers.out, format+"\n", args...)
}

func (handlers *handlers) money(amount decimal.Decimal) string {
	return handlers.currency + amount.StringFixed(2)
}

func (handlers *handlers) ask(ctx context.Context, text string) (string, error) {
	handlers.print(text)
	return handlers.readLine(ctx)
}

// run executes a menu option through the command logger. Errors coming back
// from fn are reported to the user; only input failures are returned.
func (handlers *handlers) run(command string, fn func() error) error {
	var inputErr error
	_ = handlers.log.WithLogging(command, func() error {
		err := fn()
		if isInputFailure(err) {
			inputErr = err
			return err
		}
		if err != nil {
			handlers.writeError(err)
		}
		return err
	})
	return inputErr
}

func isInputFailure(err error) bool {
	return errors.Is(err, errEndOfInput) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// createMachine handles main menu options 1 and 2.
func (handlers *handlers) createMachine(kind vending.Kind) {
	_ = handlers.log.WithLogging("create "+kind.String(), func() error {
		handlers.app.CreateMachine(kind)
		return nil
	})
	title := strings.ToUpper(kind.String()[:1]) + kind.String()[1:]
	handlers.printf("%s vending machine created.", title)
}

// showItems prints one line per slot.
func (handlers *handlers) showItems(ctx context.Context) error {
	return handlers.run("show items", func() error {
		items, err := handlers.app.ProcessShowItems()
		if err != nil {
			return err
		}
		for _, item := range items {
			handlers.printf("Slot %d - %s, Price: %s, Calories: %d, Quantity: %d",
				item.Index, item.Name, handlers.money(item.Price), item.Calories, item.Quantity)
		}
		return nil
	})
}

// addFunds reads a list of whole denominations and inserts them.
func (handlers *handlers) addFunds(ctx context.Context) error {
	return handlers.run("add funds", func() error {
		line, err := handlers.ask(ctx, "Enter denominations (separated by space): ")
		if err != nil {
			return err
		}

		denominations, err := parseInts(line)
		if err != nil {
			return err
		}

		amounts := make([]decimal.Decimal, 0, len(denominations))
		for _, d := range denominations {
			amounts = append(amounts, decimal.NewFromInt(int64(d)))
		}

		total, err := handlers.app.ProcessAddFunds(amounts)
		if err != nil {
			return err
		}

		handlers.printf("Added funds. Current balance: %s", handlers.money(total))
		return nil
	})
}

// buyItem reads one slot on a regular machine or several on a special one.
func (handlers *handlers) buyItem(ctx context.Context) error {
	return handlers.run("buy item", func() error {
		kind, err := handlers.app.ActiveMachine()
		if err != nil {
			return err
		}

		var slots []int
		if kind == vending.Special {
			line, err := handlers.ask(ctx, "Enter slot numbers (separated by space): ")
			if err != nil {
				return err
			}
			if slots, err = parseInts(line); err != nil {
				return err
			}
		} else {
			line, err := handlers.ask(ctx, "Enter slot number: ")
			if err != nil {
				return err
			}
			slot, err := parseInt(line)
			if err != nil {
				return err
			}
			slots = []int{slot}
		}

		receipt, err := handlers.app.ProcessBuy(slots)
		if err != nil {
			return err
		}

		handlers.writeReceipt(receipt)
		return nil
	})
}

func (handlers *handlers) writeReceipt(receipt models.Receipt) {
	for _, line := range receipt.Lines {
		switch {
		case line.Err != nil:
			handlers.writeLineError(line)
		case receipt.Special:
			handlers.printf("Adding %s...", line.Item)
		default:
			handlers.printf("Vending %s. Remaining balance: %s", line.Item, handlers.money(receipt.Balance))
		}
	}

	if receipt.Special {
		handlers.printf("Special item prepared! Remaining balance: %s", handlers.money(receipt.Balance))
	}
}

func (handlers *handlers) writeLineError(line models.PurchaseLine) {
	if errors.Is(line.Err, vending.ErrOutOfStock) {
		handlers.printf("%s is out of stock.", line.Item)
		return
	}
	if errors.Is(line.Err, vending.ErrInvalidSlot) {
		handlers.printf("Invalid slot number: %d.", line.Slot)
		return
	}
	handlers.writeError(line.Err)
}

// restock refills every slot.
func (handlers *handlers) restock(ctx context.Context) error {
	return handlers.run("restock", func() error {
		if err := handlers.unlock(ctx); err != nil {
			return err
		}
		if err := handlers.app.ProcessRestock(); err != nil {
			return err
		}
		handlers.printf("All slots restocked to %d units.", vending.RestockQuantity)
		return nil
	})
}

// printSummary prints units sold per item and the funds held.
func (handlers *handlers) printSummary(ctx context.Context) error {
	return handlers.run("print summary", func() error {
		summary, err := handlers.app.ProcessSummary()
		if err != nil {
			return err
		}
		handlers.println("Transaction Summary:")
		for _, sold := range summary.Sold {
			handlers.printf("%s: %d", sold.Name, sold.Sold)
		}
		handlers.printf("Total funds: %s", handlers.money(summary.Funds))
		return nil
	})
}

// changePrice reads a slot and a new price.
func (handlers *handlers) changePrice(ctx context.Context) error {
	return handlers.run("change price", func() error {
		if err := handlers.unlock(ctx); err != nil {
			return err
		}

		line, err := handlers.ask(ctx, "Enter slot number: ")
		if err != nil {
			return err
		}
		slot, err := parseInt(line)
		if err != nil {
			return err
		}

		line, err = handlers.ask(ctx, "Enter new price: ")
		if err != nil {
			return err
		}
		price, err := parseAmount(line)
		if err != nil {
			return err
		}

		updated, err := handlers.app.ProcessChangePrice(slot, price)
		if err != nil {
			return err
		}

		handlers.printf("Price of %s changed to %s", updated.Name, handlers.money(updated.Price))
		return nil
	})
}

// collectPayment empties the money box.
func (handlers *handlers) collectPayment(ctx context.Context) error {
	return handlers.run("collect payment", func() error {
		if err := handlers.unlock(ctx); err != nil {
			return err
		}
		collected, err := handlers.app.ProcessCollect()
		if err != nil {
			return err
		}
		handlers.printf("Collected %s from the machine.", handlers.money(collected))
		return nil
	})
}

// replenishMoney reads an amount of change to add to the money box.
func (handlers *handlers) replenishMoney(ctx context.Context) error {
	return handlers.run("replenish money", func() error {
		if err := handlers.unlock(ctx); err != nil {
			return err
		}

		line, err := handlers.ask(ctx, "Enter amount to replenish: ")
		if err != nil {
			return err
		}
		amount, err := parseAmount(line)
		if err != nil {
			return err
		}

		total, err := handlers.app.ProcessReplenish(amount)
		if err != nil {
			return err
		}

		handlers.printf("Replenished money box. Current balance: %s", handlers.money(total))
		return nil
	})
}

// unlock asks for the operator PIN when maintenance options are locked.
func (handlers *handlers) unlock(ctx context.Context) error {
	if !handlers.app.OperatorLocked() {
		return nil
	}
	pin, err := handlers.ask(ctx, "Enter operator PIN: ")
	if err != nil {
		return err
	}
	return handlers.app.Unlock(pin)
}

// writeError reports an error as a single line of text.
func (handlers *handlers) writeError(err error) {
	switch {
	case errors.Is(err, errInvalidInput):
		handlers.println("Invalid input.")
	case errors.Is(err, app.ErrNoMachine):
		handlers.println("No vending machine available.")
	case errors.Is(err, app.ErrWrongPIN):
		handlers.println("Incorrect operator PIN.")
	case errors.Is(err, app.ErrOperatorLocked):
		handlers.println("Operator PIN required.")
	case errors.Is(err, vending.ErrInvalidSlot):
		handlers.println("Invalid slot number.")
	case errors.Is(err, vending.ErrInvalidPrice):
		handlers.println("Price cannot be negative.")
	case errors.Is(err, vending.ErrInvalidAmount):
		handlers.println("Amount must be greater than zero.")
	case errors.Is(err, vending.ErrInsufficientFunds):
		handlers.println("Insufficient funds.")
	case errors.Is(err, vending.ErrOutOfStock):
		handlers.println("Item is out of stock.")
	case errors.Is(err, vending.ErrEmptyOrder):
		handlers.println("No slot selected.")
	case errors.Is(err, vending.ErrSingleItemOnly):
		handlers.println("Regular machines vend one item at a time.")
	default:
		handlers.printf("Error: %s", err)
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidInput, s)
	}
	return n, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty list", errInvalidInput)
	}

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	text := strings.TrimSpace(s)
	if !amountPattern.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%w: %q", errInvalidInput, s)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errInvalidInput, s)
	}
	return d, nil
}
