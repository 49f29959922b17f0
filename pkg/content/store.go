package content

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/dmitrymomot/contentkit/pkg/locale"
	"github.com/dmitrymomot/contentkit/pkg/translate"
)

// Translator is the slice of the translation service the store needs for
// backfills. *translate.Service satisfies it.
type Translator interface {
	Translate(ctx context.Context, req translate.Request) (translate.Result, error)
}

// Store is the authoritative, process-lifetime registry of content items.
// It is safe for concurrent use; each mutation runs to completion under the
// write lock, so versions and timestamps never interleave for the same id.
type Store struct {
	mu         sync.RWMutex
	items      map[string]*Item
	base       locale.Locale
	translator Translator
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Store instance.
type Option func(*Store)

// WithBaseLocale overrides the base locale used as the translation source
// and the first fallback. Default is locale.Default.
func WithBaseLocale(loc locale.Locale) Option {
	return func(s *Store) {
		if locale.IsSupported(loc) {
			s.base = loc
		}
	}
}

// WithTranslator provides the translation backend used by AutoTranslate.
// Without it the store works as a plain registry and auto-translation
// returns ErrNoTranslator.
func WithTranslator(t Translator) Option {
	return func(s *Store) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLogger provides a logger for batch failures. If not specified, a
// discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an empty store. Hosts construct one explicitly during startup
// and hand the reference to whatever needs it; there is no package-level
// instance.
func New(opts ...Option) *Store {
	s := &Store{
		items:  make(map[string]*Item),
		base:   locale.Default,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseLocale returns the store's base locale.
func (s *Store) BaseLocale() locale.Locale {
	return s.base
}

// Upsert writes text for a single locale, creating the item on first use
// and preserving every previously stored locale otherwise. An empty loc
// defaults to the base locale. Type and key are refreshed on every call.
// Each call increments the item's version by exactly one.
func (s *Store) Upsert(id string, typ ItemType, key, text string, loc locale.Locale) (*Item, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if loc == "" {
		loc = s.base
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	it, ok := s.items[id]
	if !ok {
		it = &Item{
			ID:        id,
			Type:      typ,
			Key:       key,
			Content:   map[locale.Locale]string{loc: text},
			Locales:   []locale.Locale{loc},
			CreatedAt: now,
			UpdatedAt: now,
			Version:   1,
		}
		s.items[id] = it
		return it.clone(), nil
	}

	it.Type = typ
	it.Key = key
	it.Content[loc] = text
	it.addLocale(loc)
	it.UpdatedAt = now
	it.Version++
	return it.clone(), nil
}

// Replace writes a full locale map for an item, discarding whatever locales
// were stored before. The map must not be empty: an item never loses its
// last locale. Like Upsert, it counts as one mutation.
func (s *Store) Replace(id string, typ ItemType, key string, m map[locale.Locale]string) (*Item, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if len(m) == 0 {
		return nil, ErrEmptyContent
	}

	content := make(map[locale.Locale]string, len(m))
	order := make([]locale.Locale, 0, len(m))
	// Deterministic insertion order for a wholesale map: supported-set order.
	for _, loc := range locale.Supported() {
		if text, ok := m[loc]; ok {
			content[loc] = text
			order = append(order, loc)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	it, ok := s.items[id]
	if !ok {
		it = &Item{
			ID:        id,
			Type:      typ,
			Key:       key,
			Content:   content,
			Locales:   order,
			CreatedAt: now,
			UpdatedAt: now,
			Version:   1,
		}
		s.items[id] = it
		return it.clone(), nil
	}

	it.Type = typ
	it.Key = key
	it.Content = content
	it.Locales = order
	it.UpdatedAt = now
	it.Version++
	return it.clone(), nil
}

// Get resolves the best available text for an item: exact locale first, the
// base locale second, the first populated locale third. The ok-bool is
// false only when the item does not exist or has no locales at all, which
// the creation invariant prevents.
func (s *Store) Get(id string, loc locale.Locale) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return "", false
	}
	if text, ok := it.Content[loc]; ok {
		return text, true
	}
	if text, ok := it.Content[s.base]; ok {
		return text, true
	}
	if len(it.Locales) > 0 {
		return it.Content[it.Locales[0]], true
	}
	return "", false
}

// Item returns a copy of the stored item, or ErrItemNotFound.
func (s *Store) Item(id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return it.clone(), nil
}

// Search treats keyPattern as a case-insensitive regular expression matched
// against item keys and returns the items that both match and have loc
// populated, sorted by key ascending.
func (s *Store) Search(keyPattern string, loc locale.Locale) ([]*Item, error) {
	re, err := regexp.Compile("(?i)" + keyPattern)
	if err != nil {
		return nil, ErrInvalidPattern
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Item
	for _, it := range s.items {
		if re.MatchString(it.Key) && it.hasLocale(loc) {
			out = append(out, it.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Len reports the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear empties the store. Items simply cease to exist; there are no
// versioning implications.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*Item)
}

// ids returns all item ids sorted ascending, for deterministic batch order.
func (s *Store) ids() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
