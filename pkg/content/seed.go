package content

import (
	"context"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// SeedItem is one piece of initial content for Seed.
type SeedItem struct {
	ID     string
	Type   ItemType
	Key    string
	Text   string
	Locale locale.Locale
}

// Seed loads initial content during host startup. It is an explicit entry
// point the host calls once and waits on before serving reads; the store
// performs no load-time side effects of its own. When target locales are
// given, each seeded item is backfilled through AutoTranslate, with per-item
// failures collected the same way AutoTranslateAll reports them.
func (s *Store) Seed(ctx context.Context, items []SeedItem, targets ...locale.Locale) ([]BatchError, error) {
	for _, item := range items {
		if _, err := s.Upsert(item.ID, item.Type, item.Key, item.Text, item.Locale); err != nil {
			return nil, err
		}
	}

	if len(targets) == 0 {
		return nil, nil
	}

	var failed []BatchError
	for _, item := range items {
		if _, err := s.AutoTranslate(ctx, item.ID, targets); err != nil {
			s.logger.ErrorContext(ctx, "seed backfill failed for item",
				"id", item.ID,
				"error", err,
			)
			failed = append(failed, BatchError{ID: item.ID, Err: err})
		}
	}
	return failed, nil
}
