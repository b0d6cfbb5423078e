package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/pkg/ctxutil"
)

// OverrideStats replaces a customer's derived aggregates with an explicitly
// supplied snapshot. This is the only write path to the aggregates outside
// order reconciliation. The snapshot must satisfy the aggregate invariants;
// an incoherent one is rejected with an InvariantViolation, never clamped.
func (s *Service) OverrideStats(ctx context.Context, input OverrideStatsInput) (*domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := input.Stats.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Customer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.customers.GetByIDForUpdate(ctx, input.CustomerID); err != nil {
			return fmt.Errorf("lock customer: %w", err)
		}

		var err error
		updated, err = s.customers.UpdateStats(ctx, input.CustomerID, input.Stats)
		if err != nil {
			return fmt.Errorf("override customer stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	actor, _ := ctxutil.ActorFromCtx(ctx)
	s.log.WarnContext(ctx, "customer stats overridden",
		"customer_id", input.CustomerID,
		"actor", actor,
		"total_spend", input.Stats.TotalSpend,
		"total_orders", input.Stats.TotalOrders,
	)

	return updated, nil
}

// RecomputeStats rebuilds a customer's aggregates from the order ledger.
// Repair path for aggregates that drifted (clamp anomalies, manual edits).
func (s *Service) RecomputeStats(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var updated *domain.Customer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.customers.GetByIDForUpdate(ctx, id); err != nil {
			return fmt.Errorf("lock customer: %w", err)
		}

		stats, err := s.orders.AggregateForCustomer(ctx, id)
		if err != nil {
			return fmt.Errorf("aggregate orders: %w", err)
		}

		updated, err = s.customers.UpdateStats(ctx, id, stats)
		if err != nil {
			return fmt.Errorf("write recomputed stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customer stats recomputed",
		"customer_id", id,
		"total_spend", updated.Stats.TotalSpend,
		"total_orders", updated.Stats.TotalOrders,
	)

	return updated, nil
}
