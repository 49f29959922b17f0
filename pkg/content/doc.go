// Package content implements an in-memory localized content store with an
// automatic-translation backfill path and a read-side lookup facade.
//
// The Store owns the authoritative mapping from content identifier to
// per-locale text. Every mutation bumps the item's version by exactly one
// and refreshes its update timestamp; reads resolve through a fallback
// chain (exact locale, base locale, first populated locale) so callers
// never see a missing-translation error for an item that has any text at
// all.
//
// AutoTranslate backfills the locales an item is missing by calling a
// translation Provider for each one concurrently, then merges the results
// back in a single version increment. AutoTranslateAll applies that to the
// whole store sequentially, isolating per-item failures so one bad item
// cannot block backfill for the rest.
//
// The Resolver is the single read entry point for presentation code: it
// matches a lookup key against the store first and a static translation
// Table second, and fails open by returning the key itself when neither has
// an answer, so a missing translation shows up visibly in rendered output
// instead of a blank region.
//
// # Usage
//
//	store := content.New(content.WithTranslator(svc))
//	store.Upsert("hero-title", content.TypeText, "hero.title", "Design System Portfolio", locale.English)
//	item, err := store.AutoTranslate(ctx, "hero-title", locale.Supported())
//
//	resolver := content.NewResolver(store, staticTable)
//	title := resolver.Resolve("hero.title", locale.Farsi)
//
// The store's lifetime is the host process's lifetime: there is no
// persistence, and Clear resets it completely. Hosts construct it explicitly
// and pass the reference around; nothing in this package is a global.
package content
