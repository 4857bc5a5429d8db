package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"vending_machine/internal/app"
	"vending_machine/internal/catalog"
	"vending_machine/internal/config"
	"vending_machine/internal/pkg/logger"
	"vending_machine/internal/pkg/security"
	"vending_machine/internal/service"
)

func main() {
	hashPIN := flag.Bool("hash-pin", false, "read an operator PIN from stdin, print its bcrypt hash for OPERATOR_PIN_HASH and exit")
	flag.Parse()

	if *hashPIN {
		if err := printPINHash(os.Stdin, os.Stdout); err != nil {
			log.Fatal("Failed to hash operator PIN: ", err)
		}
		return
	}

	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run wires the console and blocks until it stops. Failures are logged before being returned.
func run() error {
	l, err := logger.CreateLogger(config.LogLevel)
	if err != nil {
		log.Println("Failed to create logger:", err)
		return err
	}
	defer l.Sync()

	if config.OperatorPINHash != "" {
		if err := security.ValidateHash(config.OperatorPINHash); err != nil {
			l.Sugar().Errorf("Invalid OPERATOR_PIN_HASH: %s", err)
			return err
		}
	}

	items, err := catalog.Load(config.CatalogFile)
	if err != nil {
		l.Sugar().Errorf("Failed to load catalog: %s", err)
		return err
	}

	app := app.NewApp(items, l, app.WithOperatorPIN(config.OperatorPINHash))
	service := service.NewService(app, os.Stdin, os.Stdout, config.CurrencySymbol, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		l.Sugar().Errorf("Console stopped: %s", err)
		return err
	}
	return nil
}

// printPINHash reads the first line of in as the operator PIN and writes its hash to out.
// The PIN is trimmed the same way the console trims what the operator types.
func printPINHash(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return err
		}
		return security.ErrEmptyPIN
	}

	hash, err := security.HashPIN(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, hash)
	return err
}
