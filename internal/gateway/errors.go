package gateway

import (
	"errors"
	"fmt"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
)

// ErrorKind tags a gateway failure so callers can always distinguish what
// went wrong without parsing messages.
type ErrorKind string

const (
	// KindConfiguration: a credential or provider registration is missing.
	// Fatal at startup; reachable at dispatch time only for deliberately
	// disabled providers.
	KindConfiguration ErrorKind = "configuration_error"
	// KindUnknownModel: the requested model id is not in the catalog.
	// A caller bug; surfaced before any provider is touched.
	KindUnknownModel ErrorKind = "unknown_model"
	// KindProvider: the upstream call failed. The original provider
	// message is preserved; retry policy is the caller's.
	KindProvider ErrorKind = "provider_error"
	// KindParse: the provider answered in JSON mode but violated the
	// contract. Callers may retry with a stricter prompt.
	KindParse ErrorKind = "parse_error"
)

// Error is the typed failure every Dispatch returns. No fallback value is
// ever synthesized in its place.
type Error struct {
	Kind    ErrorKind
	ModelID string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (model=%s): %s", e.Kind, e.ModelID, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps an adapter failure onto the gateway taxonomy, tagging it
// with the requesting model id.
func classify(modelID string, err error) *Error {
	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		return &Error{Kind: KindUnknownModel, ModelID: modelID, Message: err.Error(), Err: err}
	}

	var parseErr *provider.ParseError
	if errors.As(err, &parseErr) {
		return &Error{Kind: KindParse, ModelID: modelID, Message: err.Error(), Err: err}
	}

	var cfgErr *provider.ConfigError
	if errors.As(err, &cfgErr) {
		return &Error{Kind: KindConfiguration, ModelID: modelID, Message: err.Error(), Err: err}
	}

	// Everything else, cancellation included, surfaces as a provider
	// failure with the original message intact.
	return &Error{Kind: KindProvider, ModelID: modelID, Message: err.Error(), Err: err}
}
