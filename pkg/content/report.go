package content

import (
	"math"
	"sort"

	"github.com/dmitrymomot/contentkit/pkg/locale"
)

// Status reports one item's translation completeness against a requested
// set of target locales.
type Status struct {
	ID                   string          `json:"id"`
	Key                  string          `json:"key"`
	Present              []locale.Locale `json:"present"`
	Missing              []locale.Locale `json:"missing"`
	CompletionPercentage int             `json:"completionPercentage"`
}

// TranslationStatus reports, per item, which of the target locales are
// populated and which are missing, plus a rounded completion percentage.
// A request for zero target locales is defined as 0% complete; the
// denominator is guarded, not divided by.
func (s *Store) TranslationStatus(targets []locale.Locale) []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Status, 0, len(s.items))
	for _, it := range s.items {
		st := Status{ID: it.ID, Key: it.Key}
		for _, target := range targets {
			if it.hasLocale(target) {
				st.Present = append(st.Present, target)
			} else {
				st.Missing = append(st.Missing, target)
			}
		}
		if len(targets) > 0 {
			st.CompletionPercentage = int(math.Round(
				float64(len(st.Present)) / float64(len(targets)) * 100,
			))
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
