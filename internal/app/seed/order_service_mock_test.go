package seed

import (
	"context"
	"sync"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/order"
)

var _ orderService = &orderServiceMock{}

type orderServiceMock struct {
	CreateOrderFunc func(ctx context.Context, input order.CreateOrderInput) (*domain.Order, error)

	calls struct {
		CreateOrder []struct {
			Ctx   context.Context
			Input order.CreateOrderInput
		}
	}
	lockCreateOrder sync.RWMutex
}

func (mock *orderServiceMock) CreateOrder(ctx context.Context, input order.CreateOrderInput) (*domain.Order, error) {
	if mock.CreateOrderFunc == nil {
		panic("orderServiceMock.CreateOrderFunc: method is nil but orderService.CreateOrder was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input order.CreateOrderInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateOrder.Lock()
	mock.calls.CreateOrder = append(mock.calls.CreateOrder, callInfo)
	mock.lockCreateOrder.Unlock()
	return mock.CreateOrderFunc(ctx, input)
}

func (mock *orderServiceMock) CreateOrderCalls() []struct {
	Ctx   context.Context
	Input order.CreateOrderInput
} {
	mock.lockCreateOrder.RLock()
	calls := mock.calls.CreateOrder
	mock.lockCreateOrder.RUnlock()
	return calls
}
