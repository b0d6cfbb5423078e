package segment

import (
	"context"
	"fmt"
	"time"

	"github.com/minicrm/crm-backend/internal/domain"
)

// Window selects which recently-active predicate segment counts use.
type Window string

const (
	// WindowAll counts any customer with at least one order as recently
	// active.
	WindowAll Window = "all"
	// WindowStrict only counts customers whose last order falls inside the
	// configured trailing window.
	WindowStrict Window = "strict"
)

// CustomerSegments counts the active customers in each segment. The segments
// overlap (a customer with one order is both recently active and new), so the
// counts do not sum to the customer total. WindowStrict evaluates the
// recently-active segment against the rules' trailing window ending now.
func (s *Service) CustomerSegments(ctx context.Context, window Window) (map[domain.Segment]int, error) {
	customers, err := s.customers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active customers: %w", err)
	}

	now := time.Now().UTC()

	counts := make(map[domain.Segment]int, len(domain.AllSegments()))
	for _, seg := range domain.AllSegments() {
		counts[seg] = 0
	}
	for _, c := range customers {
		for _, seg := range domain.AllSegments() {
			matched := s.rules.Matches(seg, c.Stats)
			if window == WindowStrict {
				matched = s.rules.MatchesStrict(seg, c.Stats, now)
			}
			if matched {
				counts[seg]++
			}
		}
	}

	return counts, nil
}
