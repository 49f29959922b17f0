package content

import "errors"

var (
	// ErrItemNotFound is returned when an operation references an id the
	// store has never seen.
	ErrItemNotFound = errors.New("content item not found")

	// ErrEmptyContent is returned when a wholesale replacement would leave
	// an item with no locales at all; items always keep at least the locale
	// they were created with.
	ErrEmptyContent = errors.New("content map must not be empty")

	// ErrMissingID is returned when an item carries no id.
	ErrMissingID = errors.New("content item id must not be empty")

	// ErrNoTranslator is returned by the auto-translate operations when the
	// store was built without a translation provider.
	ErrNoTranslator = errors.New("no translation provider configured")

	// ErrInvalidPattern is returned by Search for an uncompilable key pattern.
	ErrInvalidPattern = errors.New("invalid key pattern")

	// ErrUnsupportedLocale is returned by ParseTable for a locale code
	// outside the supported set.
	ErrUnsupportedLocale = errors.New("unsupported locale in translation table")

	// ErrFailedToParseTable is returned when static table content cannot be
	// decoded.
	ErrFailedToParseTable = errors.New("failed to parse translation table")
)
