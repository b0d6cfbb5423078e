package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	CreateFunc         func(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, params domain.OrderUpdateParams) (*domain.Order, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListByCustomerFunc func(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	ListFunc           func(ctx context.Context, limit, offset int) ([]domain.Order, error)
	MaxOrderDateFunc   func(ctx context.Context, customerID uuid.UUID) (*time.Time, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			O   *domain.Order
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.OrderUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		MaxOrderDate []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockListByCustomer sync.RWMutex
	lockList           sync.RWMutex
	lockMaxOrderDate   sync.RWMutex
}

func (mock *orderRepoMock) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if mock.CreateFunc == nil {
		panic("orderRepoMock.CreateFunc: method is nil but orderRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   *domain.Order
	}{Ctx: ctx, O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *orderRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   *domain.Order
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *orderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if mock.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but orderRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *orderRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *orderRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.OrderUpdateParams) (*domain.Order, error) {
	if mock.UpdateFunc == nil {
		panic("orderRepoMock.UpdateFunc: method is nil but orderRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.OrderUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *orderRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.OrderUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *orderRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("orderRepoMock.DeleteFunc: method is nil but orderRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *orderRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *orderRepoMock) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	if mock.ListByCustomerFunc == nil {
		panic("orderRepoMock.ListByCustomerFunc: method is nil but orderRepo.ListByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockListByCustomer.Lock()
	mock.calls.ListByCustomer = append(mock.calls.ListByCustomer, callInfo)
	mock.lockListByCustomer.Unlock()
	return mock.ListByCustomerFunc(ctx, customerID)
}

func (mock *orderRepoMock) ListByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockListByCustomer.RLock()
	calls := mock.calls.ListByCustomer
	mock.lockListByCustomer.RUnlock()
	return calls
}

func (mock *orderRepoMock) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if mock.ListFunc == nil {
		panic("orderRepoMock.ListFunc: method is nil but orderRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *orderRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *orderRepoMock) MaxOrderDate(ctx context.Context, customerID uuid.UUID) (*time.Time, error) {
	if mock.MaxOrderDateFunc == nil {
		panic("orderRepoMock.MaxOrderDateFunc: method is nil but orderRepo.MaxOrderDate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockMaxOrderDate.Lock()
	mock.calls.MaxOrderDate = append(mock.calls.MaxOrderDate, callInfo)
	mock.lockMaxOrderDate.Unlock()
	return mock.MaxOrderDateFunc(ctx, customerID)
}

func (mock *orderRepoMock) MaxOrderDateCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockMaxOrderDate.RLock()
	calls := mock.calls.MaxOrderDate
	mock.lockMaxOrderDate.RUnlock()
	return calls
}
