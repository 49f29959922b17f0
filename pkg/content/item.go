package content

import (
	"time"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// ItemType tags what a piece of stored text represents. Informational only:
// no store invariant depends on it.
type ItemType string

const (
	TypePage      ItemType = "page"
	TypeSection   ItemType = "section"
	TypeComponent ItemType = "component"
	TypeText      ItemType = "text"
)

// Item is the stored unit of localized text.
//
// Content is sparse: a locale key is present only once that locale has been
// populated, and absence is distinct from an empty string. Locales records
// the order in which locales were first populated; the fallback chain's
// last tier reads the first entry. Version starts at 1 on creation and
// increments by exactly one per mutation, auto-translation backfills
// included.
type Item struct {
	ID        string                   `json:"id"`
	Type      ItemType                 `json:"type"`
	Key       string                   `json:"key"`
	Content   map[locale.Locale]string `json:"content"`
	Locales   []locale.Locale          `json:"locales"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Version   int                      `json:"version"`
}

// clone returns a deep copy so callers can never mutate store state through
// a returned item.
func (it *Item) clone() *Item {
	cp := *it
	cp.Content = make(map[locale.Locale]string, len(it.Content))
	for loc, text := range it.Content {
		cp.Content[loc] = text
	}
	cp.Locales = make([]locale.Locale, len(it.Locales))
	copy(cp.Locales, it.Locales)
	return &cp
}

// hasLocale reports whether loc has been populated on the item.
func (it *Item) hasLocale(loc locale.Locale) bool {
	_, ok := it.Content[loc]
	return ok
}

// addLocale records loc in the insertion-order list if it is new.
func (it *Item) addLocale(loc locale.Locale) {
	for _, l := range it.Locales {
		if l == loc {
			return
		}
	}
	it.Locales = append(it.Locales, loc)
}
