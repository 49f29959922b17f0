package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

func TestSupported(t *testing.T) {
	t.Parallel()

	langs := locale.Supported()
	require.Equal(t, []locale.Locale{locale.English, locale.Swedish, locale.Farsi}, langs)

	// Returned slice is a copy: mutating it must not leak into the package.
	langs[0] = locale.Locale("xx")
	assert.Equal(t, locale.English, locale.Supported()[0])
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		want    locale.Locale
		wantErr bool
	}{
		{name: "exact", code: "en", want: locale.English},
		{name: "uppercase", code: "SV", want: locale.Swedish},
		{name: "with region", code: "fa-IR", want: locale.Farsi},
		{name: "underscore region", code: "en_US", want: locale.English},
		{name: "padded", code: "  sv ", want: locale.Swedish},
		{name: "unsupported", code: "de", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := locale.Parse(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locale.LTR, locale.English.Direction())
	assert.Equal(t, locale.LTR, locale.Swedish.Direction())
	assert.Equal(t, locale.RTL, locale.Farsi.Direction())

	assert.False(t, locale.English.IsRTL())
	assert.True(t, locale.Farsi.IsRTL())

	assert.Equal(t, "ltr", locale.LTR.String())
	assert.Equal(t, "rtl", locale.RTL.String())
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	for _, l := range locale.Supported() {
		assert.True(t, locale.IsSupported(l))
	}
	assert.False(t, locale.IsSupported(locale.Locale("de")))
	assert.False(t, locale.IsSupported(locale.Locale("")))
}

func TestTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", locale.English.Tag().String())
	assert.Equal(t, "fa", locale.Farsi.Tag().String())
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "svenska", locale.Swedish.DisplayName())
	assert.NotEmpty(t, locale.Farsi.DisplayName())
}
