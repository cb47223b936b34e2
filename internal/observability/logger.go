// Package observability sets up the diagnostic logger used to trace requests
// to the tracking service.
package observability

import (
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to w. Only warnings are emitted
// unless verbose is set or UMSEBENZI_DEBUG parses as true.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(log.WarnLevel)

	if dbg, err := strconv.ParseBool(os.Getenv("UMSEBENZI_DEBUG")); err == nil && dbg {
		verbose = true
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
