package customer

import (
	"context"
	"fmt"

	"github.com/minicrm/crm-backend/internal/domain"
)

// UpdateCustomer amends profile fields. Aggregates are untouched; use
// OverrideStats or RecomputeStats for those.
func (s *Service) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.customers.Update(ctx, input.CustomerID, domain.CustomerUpdateParams{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	return updated, nil
}
