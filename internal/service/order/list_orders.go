package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// GetOrder returns a single order by ID.
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("order_id", "required")
	}
	return s.orders.GetByID(ctx, id)
}

// ListOrders returns orders, optionally scoped to one customer.
func (s *Service) ListOrders(ctx context.Context, input ListOrdersInput) ([]domain.Order, error) {
	input.normalize()

	if input.CustomerID != nil {
		if *input.CustomerID == uuid.Nil {
			return nil, domain.NewValidationError("customer_id", "required")
		}
		return s.orders.ListByCustomer(ctx, *input.CustomerID)
	}

	return s.orders.List(ctx, input.Limit, input.Offset)
}
