package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is a supported language code. Only the values declared in this
// package are valid; construct others via Parse.
type Locale string

const (
	// English is the base locale: the translation source and the first
	// fallback when a requested locale is absent.
	English Locale = "en"
	// Swedish is a left-to-right secondary locale.
	Swedish Locale = "sv"
	// Farsi is a right-to-left secondary locale.
	Farsi Locale = "fa"
)

// Default is the base locale used as the translation source and fallback.
const Default = English

// Direction is the writing direction of a locale's script.
type Direction int

const (
	// LTR marks left-to-right scripts.
	LTR Direction = iota
	// RTL marks right-to-left scripts.
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// supported is the fixed ordered list of locales. Order matters: Supported
// exposes it and callers rely on it being stable across calls.
var supported = []Locale{English, Swedish, Farsi}

var directions = map[Locale]Direction{
	English: LTR,
	Swedish: LTR,
	Farsi:   RTL,
}

// Supported returns the fixed ordered list of supported locales.
// The returned slice is a copy; mutating it has no effect on the package.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether l is one of the supported locales.
func IsSupported(l Locale) bool {
	_, ok := directions[l]
	return ok
}

// Parse converts a raw code into a supported Locale. Matching is
// case-insensitive and tolerates region subtags ("en-US" parses as English).
func Parse(code string) (Locale, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(c, "-_"); i > 0 {
		c = c[:i]
	}
	l := Locale(c)
	if !IsSupported(l) {
		return "", fmt.Errorf("locale: unsupported code %q", code)
	}
	return l, nil
}

// Direction returns the writing direction of l. Unsupported locales report
// LTR, matching the base locale's script.
func (l Locale) Direction() Direction {
	return directions[l]
}

// IsRTL reports whether l uses a right-to-left script.
func (l Locale) IsRTL() bool {
	return l.Direction() == RTL
}

func (l Locale) String() string {
	return string(l)
}

// Tag returns the x/text language tag for l so hosts can feed it into
// golang.org/x/text pipelines (collation, number formatting, matching).
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// DisplayName returns l's self-name (the language name written in that
// language), e.g. "svenska" for Swedish.
func (l Locale) DisplayName() string {
	return display.Self.Name(l.Tag())
}
