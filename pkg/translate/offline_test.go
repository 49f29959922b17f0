package translate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contentkit/pkg/locale"
	"github.com/dmitrymomot/contentkit/pkg/translate"
)

func TestOfflineCuratedPhrase(t *testing.T) {
	t.Parallel()

	backend := translate.NewOffline()

	res, err := backend.Translate(context.Background(), translate.Request{
		Text: "Home",
		From: locale.English,
		To:   locale.Swedish,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hem", res.TranslatedText)
	assert.InDelta(t, 0.95, res.Confidence, 0.001)
	assert.Equal(t, translate.OfflineName, res.Provider)
}

func TestOfflineCuratedPhraseCaseInsensitive(t *testing.T) {
	t.Parallel()

	backend := translate.NewOffline()

	res, err := backend.Translate(context.Background(), translate.Request{
		Text: "SEARCH",
		From: locale.English,
		To:   locale.Farsi,
	})
	require.NoError(t, err)
	assert.Equal(t, "جستجو", res.TranslatedText)
	assert.InDelta(t, 0.95, res.Confidence, 0.001)
}

func TestOfflinePlaceholderFallback(t *testing.T) {
	t.Parallel()

	backend := translate.NewOffline()

	res, err := backend.Translate(context.Background(), translate.Request{
		Text: "Something nobody curated",
		From: locale.English,
		To:   locale.Swedish,
	})
	require.NoError(t, err)
	assert.Equal(t, "[sv] Something nobody curated", res.TranslatedText)
	assert.InDelta(t, 0.70, res.Confidence, 0.001)
	assert.Equal(t, translate.OfflineName, res.Provider)
}

func TestOfflineSameLocale(t *testing.T) {
	t.Parallel()

	backend := translate.NewOffline()

	res, err := backend.Translate(context.Background(), translate.Request{
		Text: "Home",
		From: locale.English,
		To:   locale.English,
	})
	require.NoError(t, err)
	assert.Equal(t, "Home", res.TranslatedText)
	assert.InDelta(t, 1.0, res.Confidence, 0.001)
}
