package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// CreateCustomer registers a new customer. The derived aggregates start at
// zero; only the order service moves them afterwards. A duplicate email
// surfaces as domain.ErrAlreadyExists.
func (s *Service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.customers.Create(ctx, &domain.Customer{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer created",
		"customer_id", created.ID,
		"email", created.Email,
	)

	return created, nil
}
