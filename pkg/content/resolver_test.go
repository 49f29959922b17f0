package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contentkit/pkg/content"
	"github.com/dmitrymomot/contentkit/pkg/locale"
)

func TestResolveFromStore(t *testing.T) {
	t.Parallel()

	store := content.New()
	_, err := store.Upsert("nav-home", content.TypeText, "nav.home", "Home", locale.English)
	require.NoError(t, err)
	_, err = store.Upsert("nav-home", content.TypeText, "nav.home", "Hem", locale.Swedish)
	require.NoError(t, err)

	r := content.NewResolver(store, nil)
	assert.Equal(t, "Hem", r.Resolve("nav.home", locale.Swedish))
	assert.Equal(t, "Home", r.Resolve("nav.home", locale.English))
}

func TestResolveExactKeyOnly(t *testing.T) {
	t.Parallel()

	store := content.New()
	_, err := store.Upsert("nav-homepage", content.TypeText, "nav.homepage", "Homepage", locale.English)
	require.NoError(t, err)

	r := content.NewResolver(store, nil)
	// "nav.home" is a prefix of the stored key, not an exact match.
	assert.Equal(t, "nav.home", r.Resolve("nav.home", locale.English))
}

func TestResolveStoreFallbackChainApplies(t *testing.T) {
	t.Parallel()

	store := content.New()
	_, err := store.Upsert("hero", content.TypeText, "hero.title", "Welcome", locale.English)
	require.NoError(t, err)

	table := content.Table{
		locale.Farsi: {"hero.title": "static should lose to the store"},
	}
	r := content.NewResolver(store, table)

	// The item exists but only in English; an English-populated item is not
	// a match for Farsi, so the static table wins here.
	assert.Equal(t, "static should lose to the store", r.Resolve("hero.title", locale.Farsi))
	// For English the store answers directly.
	assert.Equal(t, "Welcome", r.Resolve("hero.title", locale.English))
}

func TestResolveFromStaticTable(t *testing.T) {
	t.Parallel()

	table := content.Table{
		locale.English: {"footer.copyright": "All rights reserved"},
		locale.Swedish: {"footer.copyright": "Alla rättigheter förbehållna"},
	}
	r := content.NewResolver(content.New(), table)

	assert.Equal(t, "Alla rättigheter förbehållna", r.Resolve("footer.copyright", locale.Swedish))
}

func TestResolveExplicitFallback(t *testing.T) {
	t.Parallel()

	r := content.NewResolver(content.New(), nil)
	assert.Equal(t, "Fallback copy", r.Resolve("missing.key", locale.English, "Fallback copy"))
}

func TestResolveFailsOpenWithKey(t *testing.T) {
	t.Parallel()

	r := content.NewResolver(content.New(), nil)
	assert.Equal(t, "missing.key", r.Resolve("missing.key", locale.Farsi),
		"a missing translation must render as the raw key, not a blank")
}

func TestResolveKeyWithRegexpMetacharacters(t *testing.T) {
	t.Parallel()

	store := content.New()
	_, err := store.Upsert("odd", content.TypeText, "price (usd)", "$10", locale.English)
	require.NoError(t, err)

	r := content.NewResolver(store, nil)
	assert.Equal(t, "$10", r.Resolve("price (usd)", locale.English))
}
