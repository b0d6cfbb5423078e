package segment

import (
	"context"
	"sync"

	"github.com/minicrm/crm-backend/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	ListActiveFunc func(ctx context.Context) ([]domain.Customer, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
	}
	lockListActive sync.RWMutex
}

func (mock *customerRepoMock) ListActive(ctx context.Context) ([]domain.Customer, error) {
	if mock.ListActiveFunc == nil {
		panic("customerRepoMock.ListActiveFunc: method is nil but customerRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *customerRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
