package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// DeleteOrder removes an order permanently and reconciles the owning
// customer's aggregates in the same transaction. The order count is floored
// at zero: a negative count must never be observable, and reaching the floor
// is reported as a telemetry anomaly since it indicates a double-delete race.
func (s *Service) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("order_id", "required")
	}

	var customerID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.orders.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		customerID = old.CustomerID

		cust, err := s.customers.GetByIDForUpdate(txCtx, old.CustomerID)
		if err != nil {
			return fmt.Errorf("lock customer: %w", err)
		}

		if err := s.orders.Delete(txCtx, id); err != nil {
			return err
		}

		remainingMax, err := s.orders.MaxOrderDate(txCtx, cust.ID)
		if err != nil {
			return fmt.Errorf("recompute latest order date: %w", err)
		}

		next, clamped := statsAfterDelete(cust.Stats, old.OrderValue, remainingMax)
		if clamped {
			s.log.WarnContext(txCtx, "aggregate clamp on order deletion",
				slog.String("customer_id", cust.ID.String()),
				slog.String("order_id", id.String()),
				slog.Int("total_orders_before", cust.Stats.TotalOrders),
			)
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if _, err := s.customers.UpdateStats(txCtx, cust.ID, next); err != nil {
			return fmt.Errorf("update customer aggregates: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "order deleted",
		slog.String("order_id", id.String()),
		slog.String("customer_id", customerID.String()),
	)

	return nil
}
