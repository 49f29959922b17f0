package translate

import (
	"context"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// Request describes a single translation: the source text, the locale pair,
// and an optional free-text hint (e.g. "content field: hero.title") that
// networked backends use to disambiguate tone and domain.
type Request struct {
	Text    string
	From    locale.Locale
	To      locale.Locale
	Context string
}

// Result is a completed translation. Confidence is the backend's own
// reliability estimate and is not independently verified; Provider is the
// identity of the backend that actually produced the text, which after a
// fallback differs from the configured backend.
type Result struct {
	TranslatedText string  `json:"translatedText"`
	Confidence     float64 `json:"confidence"`
	Provider       string  `json:"provider"`
}

// Provider is a single translation backend. Implementations return explicit
// errors; choosing whether a failure is recoverable is the Service's job,
// not the backend's.
type Provider interface {
	// Name identifies the backend in Results and logs.
	Name() string
	// Translate translates one string between two locales.
	Translate(ctx context.Context, req Request) (Result, error)
}
