package provision

import "fmt"

// ConfigurationError indicates invalid or contradictory input, detected
// before any network call.
type ConfigurationError struct {
	// Field names the offending parameter or document section.
	Field string
	// Reason describes the violation.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
