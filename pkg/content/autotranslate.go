package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrymomot/contentkit/pkg/locale"
	"github.com/dmitrymomot/contentkit/pkg/translate"
)

// AutoTranslate backfills the target locales an item is missing.
//
// The source locale is the base locale when the item stores it, otherwise
// the first populated locale. Each missing target is translated through the
// configured provider; the calls run concurrently and independently, and
// recoverable provider failures never reach here (the translation service
// absorbs them into offline-fallback results). The results merge back into
// the item as a single mutation: one version increment for the whole batch.
//
// An item with no missing targets is returned unchanged with zero provider
// calls. An item with zero stored locales is likewise returned unchanged; a
// missing item is ErrItemNotFound.
func (s *Store) AutoTranslate(ctx context.Context, id string, targets []locale.Locale) (*Item, error) {
	if s.translator == nil {
		return nil, ErrNoTranslator
	}

	s.mu.RLock()
	it, ok := s.items[id]
	var snapshot *Item
	if ok {
		snapshot = it.clone()
	}
	s.mu.RUnlock()

	if !ok {
		return nil, ErrItemNotFound
	}
	if len(snapshot.Locales) == 0 {
		return snapshot, nil
	}

	source := s.base
	if !snapshot.hasLocale(source) {
		source = snapshot.Locales[0]
	}
	sourceText := snapshot.Content[source]

	var missing []locale.Locale
	for _, target := range targets {
		if !snapshot.hasLocale(target) {
			missing = append(missing, target)
		}
	}
	if len(missing) == 0 {
		return snapshot, nil
	}

	results := make([]translate.Result, len(missing))
	errs := make([]error, len(missing))

	var wg sync.WaitGroup
	for i, target := range missing {
		wg.Add(1)
		go func(i int, target locale.Locale) {
			defer wg.Done()
			results[i], errs[i] = s.translator.Translate(ctx, translate.Request{
				Text:    sourceText,
				From:    source,
				To:      target,
				Context: fmt.Sprintf("content field: %s", snapshot.Key),
			})
		}(i, target)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok = s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	changed := false
	for i, target := range missing {
		// Backfill only: a locale written concurrently wins over ours.
		if it.hasLocale(target) {
			continue
		}
		it.Content[target] = results[i].TranslatedText
		it.addLocale(target)
		changed = true
	}
	if changed {
		it.UpdatedAt = s.now()
		it.Version++
	}
	return it.clone(), nil
}

// BatchError records one item's failure during AutoTranslateAll.
type BatchError struct {
	ID  string
	Err error
}

func (e BatchError) Error() string {
	return fmt.Sprintf("auto-translate %s: %v", e.ID, e.Err)
}

func (e BatchError) Unwrap() error {
	return e.Err
}

// AutoTranslateAll applies AutoTranslate to every stored item, one at a
// time. A failing item never aborts its siblings: each failure is logged
// and collected, and the returned slice is empty on full success.
func (s *Store) AutoTranslateAll(ctx context.Context, targets []locale.Locale) []BatchError {
	var failed []BatchError
	for _, id := range s.ids() {
		if _, err := s.AutoTranslate(ctx, id, targets); err != nil {
			s.logger.ErrorContext(ctx, "auto-translate failed for item",
				"id", id,
				"error", err,
			)
			failed = append(failed, BatchError{ID: id, Err: err})
		}
	}
	return failed
}
