package translate

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when a networked backend is active
	// without an API key. It is a configuration error: surfaced to the
	// caller before any request is attempted, never absorbed by fallback.
	ErrMissingCredential = errors.New("missing credential for networked translation backend")

	// ErrUnknownBackend is returned by Configure for a backend selector
	// outside the supported set.
	ErrUnknownBackend = errors.New("unknown translation backend")

	// ErrUnexpectedStatus indicates a non-2xx response from a translation
	// service. Recoverable: the Service falls back to the offline backend.
	ErrUnexpectedStatus = errors.New("translation service returned unexpected status")

	// ErrMalformedResponse indicates a payload the backend could not decode.
	// Recoverable: the Service falls back to the offline backend.
	ErrMalformedResponse = errors.New("translation service returned malformed payload")
)

// ProviderError wraps a failure from a specific backend so the Service can
// decide deliberately between surfacing it and substituting the offline
// result, rather than intercepting arbitrary errors.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
