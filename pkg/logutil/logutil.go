// Package logutil centralizes the debug loggers used throughout the
// calculator. Logging is off by default; the -log flag turns it on by
// pointing all loggers at a file.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

var out io.Writer = io.Discard

var loggers []*log.Logger

// GetLogger gets a logger with the given prefix. The logger writes to the
// output set by SetOutput or SetOutputFile, which defaults to io.Discard.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger, both
// past and future, to the given writer.
func SetOutput(newOut io.Writer) {
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file. An
// empty name turns logging off again.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	SetOutput(file)
	return nil
}
