// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment overrides.
const (
	EnvLogLevel     = "SITEWRIGHT_LOG_LEVEL"
	EnvLogTimestamp = "SITEWRIGHT_LOG_TIMESTAMP"
)

// Init installs a console logger on zerolog's global logger and returns
// it. Level defaults to info; SITEWRIGHT_LOG_LEVEL accepts any zerolog
// level name and SITEWRIGHT_LOG_TIMESTAMP=false drops timestamps (useful
// in CI logs that already carry them).
func Init(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	ctx := zerolog.New(output).With().Str("app", app)
	if withTimestamp() {
		ctx = ctx.Timestamp()
	}
	logger := ctx.Logger().Level(level())

	log.Logger = logger
	return logger
}

func level() zerolog.Level {
	raw := os.Getenv(EnvLogLevel)
	if raw == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func withTimestamp() bool {
	raw := os.Getenv(EnvLogTimestamp)
	if raw == "" {
		return true
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return enabled
}
