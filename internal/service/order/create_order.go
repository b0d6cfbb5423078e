package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// CreateOrder records a new order and reconciles the owning customer's
// aggregates in the same transaction. The customer row is locked for the
// duration, so concurrent creates for the same customer serialize instead
// of losing updates.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.OrderDate != nil {
		date = input.OrderDate.UTC()
	}
	status := domain.OrderStatusCompleted
	if input.Status != nil {
		status = *input.Status
	}

	var created *domain.Order
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cust, err := s.customers.GetByIDForUpdate(txCtx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("lock customer: %w", err)
		}

		created, err = s.orders.Create(txCtx, &domain.Order{
			ID:              uuid.New(),
			CustomerID:      input.CustomerID,
			OrderValue:      input.OrderValue,
			OrderDate:       date,
			Status:          status,
			ProductCategory: input.ProductCategory,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		next := statsAfterCreate(cust.Stats, created.OrderValue, created.OrderDate)
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

	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", created.ID.String()),
		slog.String("customer_id", created.CustomerID.String()),
		slog.Float64("order_value", created.OrderValue),
	)

	return created, nil
}
