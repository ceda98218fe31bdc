// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message that is only shown in verbose mode.
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	// Error logs an error together with its cause chain and metadata.
	Error(err error)
	// SetVerbose enables or disables debug output.
	SetVerbose(enable bool)
	// SetJSON switches between JSON and pretty logging.
	SetJSON(enable bool)
	// SetOutput changes the destination of log records.
	SetOutput(w io.Writer)
}
