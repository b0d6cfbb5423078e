package seed

import (
	"context"
	"sync"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/customer"
)

var _ customerService = &customerServiceMock{}

type customerServiceMock struct {
	CreateCustomerFunc func(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	ListCustomersFunc  func(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error)

	calls struct {
		CreateCustomer []struct {
			Ctx   context.Context
			Input customer.CreateCustomerInput
		}
		ListCustomers []struct {
			Ctx context.Context
			F   domain.CustomerFilter
		}
	}
	lockCreateCustomer sync.RWMutex
	lockListCustomers  sync.RWMutex
}

func (mock *customerServiceMock) CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error) {
	if mock.CreateCustomerFunc == nil {
		panic("customerServiceMock.CreateCustomerFunc: method is nil but customerService.CreateCustomer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.CreateCustomerInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCustomer.Lock()
	mock.calls.CreateCustomer = append(mock.calls.CreateCustomer, callInfo)
	mock.lockCreateCustomer.Unlock()
	return mock.CreateCustomerFunc(ctx, input)
}

func (mock *customerServiceMock) CreateCustomerCalls() []struct {
	Ctx   context.Context
	Input customer.CreateCustomerInput
} {
	mock.lockCreateCustomer.RLock()
	calls := mock.calls.CreateCustomer
	mock.lockCreateCustomer.RUnlock()
	return calls
}

func (mock *customerServiceMock) ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error) {
	if mock.ListCustomersFunc == nil {
		panic("customerServiceMock.ListCustomersFunc: method is nil but customerService.ListCustomers was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CustomerFilter
	}{Ctx: ctx, F: f}
	mock.lockListCustomers.Lock()
	mock.calls.ListCustomers = append(mock.calls.ListCustomers, callInfo)
	mock.lockListCustomers.Unlock()
	return mock.ListCustomersFunc(ctx, f)
}

func (mock *customerServiceMock) ListCustomersCalls() []struct {
	Ctx context.Context
	F   domain.CustomerFilter
} {
	mock.lockListCustomers.RLock()
	calls := mock.calls.ListCustomers
	mock.lockListCustomers.RUnlock()
	return calls
}
