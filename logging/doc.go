// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and integrates with Uber's Fx dependency injection framework.
// Credentials can be masked by listing their attribute keys in LoggerConfig.Redact.
package logging
