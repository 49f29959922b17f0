package content

import (
	"regexp"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// Resolver is the single read entry point presentation code uses to fetch a
// string for a key/locale pair: the store first, the static table second,
// the key itself last.
type Resolver struct {
	store *Store
	table Table
}

// NewResolver creates a resolver over a store and an optional static table.
func NewResolver(store *Store, table Table) *Resolver {
	return &Resolver{store: store, table: table}
}

// Resolve returns the best available text for key in loc.
//
// It first looks for a store item whose key matches exactly and has loc
// populated, reading it through Get so the store's fallback chain still
// applies. Failing that it consults the static table. Failing both it
// returns the fallback argument if one was given, otherwise the key itself:
// a missing translation renders as the raw key, visibly, instead of a blank.
func (r *Resolver) Resolve(key string, loc locale.Locale, fallback ...string) string {
	// Anchored match: Resolve is an exact-key lookup, not a pattern search.
	matches, err := r.store.Search("^"+regexp.QuoteMeta(key)+"$", loc)
	if err == nil && len(matches) > 0 {
		if text, ok := r.store.Get(matches[0].ID, loc); ok {
			return text
		}
	}

	if text, ok := r.table.Lookup(loc, key); ok {
		return text
	}

	if len(fallback) > 0 && fallback[0] != "" {
		return fallback[0]
	}
	return key
}
