// Package order implements the order service: ledger mutations paired with
// reconciliation of the owning customer's derived aggregates. Every create,
// update, or delete runs in one transaction that locks the customer row,
// applies the order change, and writes the post-mutation aggregates.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

//go:generate moq -out order_repo_mock_test.go . orderRepo
//go:generate moq -out customer_repo_mock_test.go . customerRepo
//go:generate moq -out tx_manager_mock_test.go . txManager

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Update(ctx context.Context, id uuid.UUID, params domain.OrderUpdateParams) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	MaxOrderDate(ctx context.Context, customerID uuid.UUID) (*time.Time, error)
}

type customerRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	UpdateStats(ctx context.Context, id uuid.UUID, stats domain.CustomerStats) (*domain.Customer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides order operations with aggregate reconciliation.
type Service struct {
	orders    orderRepo
	customers customerRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Order service.
func NewService(
	log *slog.Logger,
	orders orderRepo,
	customers customerRepo,
	tx txManager,
) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
		tx:        tx,
		log:       log.With("service", "order"),
	}
}
