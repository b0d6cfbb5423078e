package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// GetCustomer returns one customer by id.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListCustomers searches and paginates customers. The filter is normalized
// by the repository (sort whitelist, limit clamp).
func (s *Service) ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error) {
	customers, total, err := s.customers.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return customers, total, nil
}
