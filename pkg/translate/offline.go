package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// OfflineName identifies the offline backend in Results.
const OfflineName = "offline"

const (
	// confidence for an exact phrase-table hit
	offlineExactConfidence = 0.95
	// confidence for the placeholder transformation
	offlinePlaceholderConfidence = 0.70
)

// phrases is the built-in table of curated translations, keyed by the
// lowercased source text. It covers the short navigation and UI strings this
// backend is expected to see; everything else goes through the placeholder
// transform.
var phrases = map[string]map[locale.Locale]string{
	"home":     {locale.Swedish: "Hem", locale.Farsi: "خانه"},
	"about":    {locale.Swedish: "Om", locale.Farsi: "درباره"},
	"contact":  {locale.Swedish: "Kontakt", locale.Farsi: "تماس"},
	"projects": {locale.Swedish: "Projekt", locale.Farsi: "پروژه‌ها"},
	"search":   {locale.Swedish: "Sök", locale.Farsi: "جستجو"},
	"settings": {locale.Swedish: "Inställningar", locale.Farsi: "تنظیمات"},
	"welcome":  {locale.Swedish: "Välkommen", locale.Farsi: "خوش آمدید"},
	"loading":  {locale.Swedish: "Laddar", locale.Farsi: "در حال بارگذاری"},
	"read more": {
		locale.Swedish: "Läs mer", locale.Farsi: "بیشتر بخوانید",
	},
	"design system": {
		locale.Swedish: "Designsystem", locale.Farsi: "سیستم طراحی",
	},
}

// Offline is the deterministic backend: a built-in phrase table with a
// placeholder transform as the catch-all. It never fails and performs no
// I/O, which makes it both the default backend and the safety net the
// Service substitutes when a networked backend fails.
type Offline struct{}

// NewOffline creates the offline backend.
func NewOffline() *Offline {
	return &Offline{}
}

// Name implements the Provider interface.
func (o *Offline) Name() string { return OfflineName }

// Translate implements the Provider interface. An exact (case-insensitive)
// phrase-table hit returns the curated translation; anything else returns
// the source text prefixed with a locale marker so missing curation is
// visible in output rather than silently untranslated.
func (o *Offline) Translate(_ context.Context, req Request) (Result, error) {
	if req.From == req.To {
		return Result{TranslatedText: req.Text, Confidence: 1.0, Provider: OfflineName}, nil
	}

	if byLocale, ok := phrases[strings.ToLower(strings.TrimSpace(req.Text))]; ok {
		if curated, ok := byLocale[req.To]; ok {
			return Result{
				TranslatedText: curated,
				Confidence:     offlineExactConfidence,
				Provider:       OfflineName,
			}, nil
		}
	}

	return Result{
		TranslatedText: fmt.Sprintf("[%s] %s", req.To, req.Text),
		Confidence:     offlinePlaceholderConfidence,
		Provider:       OfflineName,
	}, nil
}
