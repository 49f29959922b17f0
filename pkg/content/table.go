package content

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// Table is a static translation table: a typed mapping from locale to
// key→string records. It backs the Resolver's second lookup tier for copy
// that never goes through the store.
type Table map[locale.Locale]map[string]string

// Lookup returns the entry for the locale/key pair with an explicit
// ok-bool; a missing locale and a missing key are both plain misses.
func (t Table) Lookup(loc locale.Locale, key string) (string, bool) {
	byKey, ok := t[loc]
	if !ok {
		return "", false
	}
	text, ok := byKey[key]
	return text, ok
}

// ParseTable decodes a static table from YAML (JSON, being a YAML subset,
// works too). The top level maps locale codes to flat key→string records;
// a locale code outside the supported set is an error rather than a
// silently ignored section.
func ParseTable(data []byte) (Table, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseTable, err)
	}

	table := make(Table, len(raw))
	for code, entries := range raw {
		loc, err := locale.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
		}
		if table[loc] == nil {
			table[loc] = make(map[string]string, len(entries))
		}
		for key, text := range entries {
			table[loc][key] = text
		}
	}
	return table, nil
}
