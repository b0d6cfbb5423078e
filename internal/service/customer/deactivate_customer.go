package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// DeactivateCustomer soft-deletes a customer. The configured order policy is
// applied explicitly here:
//
//   - retain: order rows and aggregates are left as they are.
//   - purge: the customer's orders are hard-deleted and the aggregates zeroed
//     in the same transaction, under the customer row lock.
func (s *Service) DeactivateCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if s.orderPolicy != domain.OrderPolicyPurge {
		deactivated, err := s.customers.SetActive(ctx, id, false)
		if err != nil {
			return nil, fmt.Errorf("deactivate customer: %w", err)
		}

		s.log.InfoContext(ctx, "customer deactivated",
			"customer_id", id,
			"order_policy", string(domain.OrderPolicyRetain),
		)
		return deactivated, nil
	}

	var deactivated *domain.Customer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.customers.GetByIDForUpdate(ctx, id); err != nil {
			return fmt.Errorf("lock customer: %w", err)
		}

		purged, err := s.orders.DeleteByCustomer(ctx, id)
		if err != nil {
			return fmt.Errorf("purge orders: %w", err)
		}

		if _, err := s.customers.UpdateStats(ctx, id, domain.CustomerStats{}); err != nil {
			return fmt.Errorf("zero customer stats: %w", err)
		}

		deactivated, err = s.customers.SetActive(ctx, id, false)
		if err != nil {
			return fmt.Errorf("deactivate customer: %w", err)
		}

		s.log.InfoContext(ctx, "customer deactivated",
			"customer_id", id,
			"order_policy", string(domain.OrderPolicyPurge),
			"orders_purged", purged,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deactivated, nil
}
