package segment

import (
	"context"
	"fmt"

	"github.com/minicrm/crm-backend/internal/domain"
)

// AudienceSize counts the active customers matching the audience type's
// predicate right now. Audience types without a segment predicate (all
// customers, and anything unrecognized after normalization) count the whole
// active set. The campaign service stores the result as a frozen snapshot.
func (s *Service) AudienceSize(ctx context.Context, t domain.AudienceType) (int, error) {
	customers, err := s.customers.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active customers: %w", err)
	}

	seg, ok := domain.SegmentForAudience(t)
	if !ok {
		return len(customers), nil
	}

	size := 0
	for _, c := range customers {
		if s.rules.Matches(seg, c.Stats) {
			size++
		}
	}

	return size, nil
}
