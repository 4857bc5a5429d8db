// Package config loads the runtime settings of the vending console from the
// environment, reading an optional .env file first.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// LogLevel is the minimum zap level written to stderr.
	LogLevel string
	// CatalogFile is an optional YAML catalog; empty means the built-in one.
	CatalogFile string
	// OperatorPINHash is a bcrypt hash guarding maintenance options; empty disables the lock.
	OperatorPINHash string
	// CurrencySymbol prefixes every rendered amount.
	CurrencySymbol string
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	Reload()
}

// Reload re-reads the settings from the current process environment.
func Reload() {
	LogLevel = getEnv("LOG_LEVEL", "info")
	CatalogFile = os.Getenv("CATALOG_FILE")
	OperatorPINHash = os.Getenv("OPERATOR_PIN_HASH")
	CurrencySymbol = getEnv("CURRENCY_SYMBOL", "$")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
