// Package customer implements the customer directory: profile CRUD, search,
// deactivation with an explicit order policy, and the administrative paths
// that touch the derived aggregates directly.
package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

//go:generate moq -rm -out customer_repo_mock_test.go -fmt goimports . customerRepo:customerRepoMock
type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)
	UpdateStats(ctx context.Context, id uuid.UUID, stats domain.CustomerStats) (*domain.Customer, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error)
}

//go:generate moq -rm -out order_repo_mock_test.go -fmt goimports . orderRepo:orderRepoMock
type orderRepo interface {
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	AggregateForCustomer(ctx context.Context, customerID uuid.UUID) (domain.CustomerStats, error)
}

//go:generate moq -rm -out tx_manager_mock_test.go -fmt goimports . txManager:txManagerMock
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements customer directory operations.
type Service struct {
	customers   customerRepo
	orders      orderRepo
	tx          txManager
	orderPolicy domain.OrderPolicy
	log         *slog.Logger
}

// NewService creates a customer service. orderPolicy governs what happens to
// a customer's orders on deactivation.
func NewService(log *slog.Logger, customers customerRepo, orders orderRepo, tx txManager, orderPolicy domain.OrderPolicy) *Service {
	return &Service{
		customers:   customers,
		orders:      orders,
		tx:          tx,
		orderPolicy: orderPolicy,
		log:         log.With("service", "customer"),
	}
}
