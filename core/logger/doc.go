// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different encodings
// for interactive use (console) and machine consumption (json). Verbosity is
// an explicit configuration value passed in by the caller; the package keeps
// no process-wide state.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Provisioning started")
//
//	// Inside a provisioning stage:
//	l := logger.WithResource(log, "index", "docs-index")
//	l.Error("Upsert failed", zap.Error(err))
package logger
