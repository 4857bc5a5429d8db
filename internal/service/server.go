package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"vending_machine/internal/app"
	"vending_machine/internal/pkg/logger"
	"vending_machine/internal/vending"
)

// errEndOfInput signals that the console input was closed.
var errEndOfInput = errors.New("service: end of input")

const mainMenu = "\n1. Create regular vending machine\n2. Create special vending machine\n3. Test vending machine\n4. Exit"

const sessionMenu = "\n1. Show items\n2. Add funds\n3. Buy item\n4. Restock\n5. Print transaction summary" +
	"\n6. Change item price\n7. Collect payment\n8. Replenish money\n9. Back to main menu"

// Service drives the vending session from a line-oriented console.
// It reads choices from the input, calls the session logic in the app package
// and writes human-readable results to the output.
type Service struct {
	handlers *handlers
	app      *app.App
	input    io.Reader
	lines    <-chan string
	log      *logger.Logger
}

// NewService creates and initializes a new Service instance reading from in and writing to out.
// Amounts are rendered with the given currency symbol.
func NewService(app *app.App, in io.Reader, out io.Writer, currency string, l *logger.Logger) *Service {
	s := &Service{app: app, input: in, log: l}
	s.handlers = newHandlers(app, s.readLine, out, currency, l)
	return s
}

// Run shows the main menu until the user exits, the input ends or ctx is cancelled.
// Only cancellation is reported as an error.
func (service *Service) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	service.lines = scanLines(ctx, service.input)
	h := service.handlers

	for {
		h.println(mainMenu)
		choice, err := service.prompt(ctx, "Choose option: ")
		if err != nil {
			return service.stopped(err)
		}

		switch choice {
		case "1":
			h.createMachine(vending.Regular)
		case "2":
			h.createMachine(vending.Special)
		case "3":
			if err := service.runSession(ctx); err != nil {
				return service.stopped(err)
			}
		case "4":
			h.println("Exiting...")
			return nil
		default:
			h.println("Invalid option.")
		}
	}
}

// runSession shows the machine menu until the user goes back to the main menu.
func (service *Service) runSession(ctx context.Context) error {
	h := service.handlers
	if _, err := service.app.ActiveMachine(); err != nil {
		h.writeError(err)
		return nil
	}
	defer service.app.EndSession()

	options := map[string]func(ctx context.Context) error{
		"1": h.showItems,
		"2": h.addFunds,
		"3": h.buyItem,
		"4": h.restock,
		"5": h.printSummary,
		"6": h.changePrice,
		"7": h.collectPayment,
		"8": h.replenishMoney,
	}

	for {
		h.println(sessionMenu)
		choice, err := service.prompt(ctx, "Choose option: ")
		if err != nil {
			return err
		}

		if choice == "9" {
			return nil
		}

		handler, ok := options[choice]
		if !ok {
			h.println("Invalid option.")
			continue
		}

		if err := handler(ctx); err != nil {
			return err
		}
	}
}

func (service *Service) prompt(ctx context.Context, text string) (string, error) {
	service.handlers.print(text)
	return service.readLine(ctx)
}

// readLine returns the next trimmed input line.
func (service *Service) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-service.lines:
		if !ok {
			return "", errEndOfInput
		}
		return strings.TrimSpace(line), nil
	}
}

func (service *Service) stopped(err error) error {
	if errors.Is(err, errEndOfInput) {
		service.log.Info("console input closed")
		return nil
	}
	return fmt.Errorf("service: %w", err)
}

// scanLines feeds input lines to a channel so that reads can be abandoned on cancellation.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
