// Package logger provides a custom logging solution built on top of Uber's Zap logging library.
// It includes functionality for creating and configuring a logger instance and a wrapper
// that logs every console command executed against the vending machine.
package logger

import (
	"log"
	"time"

	"go.uber.org/zap"
)

// Logger wraps the zap.Logger to provide additional logging functionality.
type Logger struct {
	*zap.Logger
}

// newLogger initializes a new Logger instance using the production configuration of Zap.
// In case of an error during creation, it logs the error using the standard log package.
func newLogger() *Logger {
	customLog, err := zap.NewProduction()
	if err != nil {
		log.Println(err)
	}
	return &Logger{Logger: customLog}
}

// CreateLogger creates and configures a Logger with the specified log level.
// It parses the provided level, applies it to the production configuration, and builds a new Zap logger.
func CreateLogger(level string) (customLog *Logger, err error) {
	log := newLogger()
	defer log.Sync()

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return log, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return log, err
	}

	log.Logger = zl
	return log, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// WithLogging runs fn as the named console command and records its duration
// and outcome. The error returned by fn is passed through unchanged.
func (log *Logger) WithLogging(command string, fn func() error) error {
	t1 := time.Now()
	err := fn()

	fields := []zap.Field{
		zap.String("command", command),
		zap.Duration("duration", time.Since(t1)),
	}
	if err != nil {
		log.Warn("command failed", append(fields, zap.Error(err))...)
		return err
	}

	log.Info("command served", fields...)
	return nil
}
