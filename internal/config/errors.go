package config

import "fmt"

// ConfigurationError represents a malformed keyword table or bias rule set:
// a negative weight, an empty tier, or an invalid pattern.
type ConfigurationError struct {
	Message string
	Field   string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Field != "" && e.Cause != nil:
		return fmt.Sprintf("configuration error in %s: %s: %v", e.Field, e.Message, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
