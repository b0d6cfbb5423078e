package customer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	DeleteByCustomerFunc     func(ctx context.Context, customerID uuid.UUID) (int64, error)
	AggregateForCustomerFunc func(ctx context.Context, customerID uuid.UUID) (domain.CustomerStats, error)

	calls struct {
		DeleteByCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
		AggregateForCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
	}
	lockDeleteByCustomer     sync.RWMutex
	lockAggregateForCustomer sync.RWMutex
}

func (mock *orderRepoMock) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	if mock.DeleteByCustomerFunc == nil {
		panic("orderRepoMock.DeleteByCustomerFunc: method is nil but orderRepo.DeleteByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockDeleteByCustomer.Lock()
	mock.calls.DeleteByCustomer = append(mock.calls.DeleteByCustomer, callInfo)
	mock.lockDeleteByCustomer.Unlock()
	return mock.DeleteByCustomerFunc(ctx, customerID)
}

func (mock *orderRepoMock) DeleteByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockDeleteByCustomer.RLock()
	calls := mock.calls.DeleteByCustomer
	mock.lockDeleteByCustomer.RUnlock()
	return calls
}

func (mock *orderRepoMock) AggregateForCustomer(ctx context.Context, customerID uuid.UUID) (domain.CustomerStats, error) {
	if mock.AggregateForCustomerFunc == nil {
		panic("orderRepoMock.AggregateForCustomerFunc: method is nil but orderRepo.AggregateForCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockAggregateForCustomer.Lock()
	mock.calls.AggregateForCustomer = append(mock.calls.AggregateForCustomer, callInfo)
	mock.lockAggregateForCustomer.Unlock()
	return mock.AggregateForCustomerFunc(ctx, customerID)
}

func (mock *orderRepoMock) AggregateForCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockAggregateForCustomer.RLock()
	calls := mock.calls.AggregateForCustomer
	mock.lockAggregateForCustomer.RUnlock()
	return calls
}
