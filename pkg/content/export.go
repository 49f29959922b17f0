package content

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// Snapshot is the full-store serialization payload. Items plus a metadata
// summary on the way out; only Items are required on the way in.
type Snapshot struct {
	Items    []Item   `json:"items"`
	Metadata Metadata `json:"metadata,omitzero"`
}

// Metadata summarizes an export: how many items it holds, the union of
// locales present across all of them, and the most recent update time.
// ExportID distinguishes snapshots taken from the same store.
type Metadata struct {
	ExportID    uuid.UUID       `json:"exportId"`
	TotalItems  int             `json:"totalItems"`
	Locales     []locale.Locale `json:"locales"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// Export serializes the whole store. Items are sorted by id and deep-copied,
// so the snapshot stays stable however the store changes afterwards.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, 0, len(s.items))
	union := make(map[locale.Locale]struct{})
	var last time.Time
	for _, it := range s.items {
		items = append(items, *it.clone())
		for _, loc := range it.Locales {
			union[loc] = struct{}{}
		}
		if it.UpdatedAt.After(last) {
			last = it.UpdatedAt
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	locales := make([]locale.Locale, 0, len(union))
	for _, loc := range locale.Supported() {
		if _, ok := union[loc]; ok {
			locales = append(locales, loc)
		}
	}

	return Snapshot{
		Items: items,
		Metadata: Metadata{
			ExportID:    uuid.New(),
			TotalItems:  len(items),
			Locales:     locales,
			LastUpdated: last,
		},
	}
}

// Import restores items from a snapshot, overwriting by id. Timestamps and
// versions are taken as serialized, so a round trip through Export and
// Import reproduces the store exactly. Items with no id are rejected before
// anything is written.
func (s *Store) Import(snap Snapshot) error {
	for i := range snap.Items {
		if snap.Items[i].ID == "" {
			return ErrMissingID
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range snap.Items {
		it := snap.Items[i].clone()
		if len(it.Locales) == 0 && len(it.Content) > 0 {
			// Older payloads may lack the order list; rebuild it.
			for _, loc := range locale.Supported() {
				if _, ok := it.Content[loc]; ok {
					it.Locales = append(it.Locales, loc)
				}
			}
		}
		if it.Version < 1 {
			it.Version = 1
		}
		s.items[it.ID] = it
	}
	return nil
}
