package provider

import (
	"fmt"

	"github.com/nulzo/provider-gateway/internal/catalog"
)

// ConfigError means an adapter could not be constructed, typically because
// its API key environment variable is unset. It is fatal at startup and is
// never produced mid-call.
type ConfigError struct {
	Provider catalog.Provider
	EnvVar   string
}

func (e *ConfigError) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("provider %s is not configured: %s is unset", e.Provider, e.EnvVar)
	}
	return fmt.Sprintf("provider %s is not configured: missing API key", e.Provider)
}

// CallError wraps an upstream transport or provider-side failure. The
// original message is preserved untranslated; retry policy belongs to the
// caller. Cancellation of the caller's context surfaces here too.
type CallError struct {
	Provider catalog.Provider
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// ParseError means the provider answered in JSON mode but the reply was not
// valid JSON for the requested shape. Distinct from CallError so callers can
// retry with a stricter instruction instead of treating it as an outage.
type ParseError struct {
	Provider catalog.Provider
	Raw      string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s returned malformed JSON: %v", e.Provider, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
