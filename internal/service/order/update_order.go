package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minicrm/crm-backend/internal/domain"
)

// UpdateOrder amends an order and reconciles the owning customer's aggregates
// in the same transaction. The spend delta is new_value - old_value; the
// latest order date is re-derived from the ledger because a date change may
// promote or demote any order.
func (s *Service) UpdateOrder(ctx context.Context, input UpdateOrderInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Order
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.orders.GetByID(txCtx, input.OrderID)
		if err != nil {
			return err
		}

		cust, err := s.customers.GetByIDForUpdate(txCtx, old.CustomerID)
		if err != nil {
			return fmt.Errorf("lock customer: %w", err)
		}

		updated, err = s.orders.Update(txCtx, input.OrderID, domain.OrderUpdateParams{
			OrderValue:      input.OrderValue,
			OrderDate:       input.OrderDate,
			Status:          input.Status,
			ProductCategory: input.ProductCategory,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		maxDate, err := s.orders.MaxOrderDate(txCtx, cust.ID)
		if err != nil {
			return fmt.Errorf("recompute latest order date: %w", err)
		}

		next, clamped := statsAfterUpdate(cust.Stats, old.OrderValue, updated.OrderValue, maxDate)
		if clamped {
			s.log.WarnContext(txCtx, "aggregate clamp on order update",
				slog.String("customer_id", cust.ID.String()),
				slog.String("order_id", updated.ID.String()),
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
		return nil, err
	}

	s.log.InfoContext(ctx, "order updated",
		slog.String("order_id", updated.ID.String()),
		slog.String("customer_id", updated.CustomerID.String()),
	)

	return updated, nil
}
