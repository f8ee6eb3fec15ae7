// logger.go - Structured logging for the UTXO circuit build demo.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger writing human-readable console output,
// at the given level ("debug", "info", "warn", "error"). It optionally
// also writes to logFile when set.
func NewLogger(level string, logFile string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout}

	if logFile == "" {
		return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Logger{}, err
	}
	multi := zerolog.MultiLevelWriter(console, f)
	return zerolog.New(multi).Level(lvl).With().Timestamp().Logger(), nil
}
