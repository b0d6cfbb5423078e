package order

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	UpdateStatsFunc      func(ctx context.Context, id uuid.UUID, stats domain.CustomerStats) (*domain.Customer, error)

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStats []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Stats domain.CustomerStats
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateStats      sync.RWMutex
}

func (mock *customerRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("customerRepoMock.GetByIDForUpdateFunc: method is nil but customerRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *customerRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *customerRepoMock) UpdateStats(ctx context.Context, id uuid.UUID, stats domain.CustomerStats) (*domain.Customer, error) {
	if mock.UpdateStatsFunc == nil {
		panic("customerRepoMock.UpdateStatsFunc: method is nil but customerRepo.UpdateStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Stats domain.CustomerStats
	}{Ctx: ctx, ID: id, Stats: stats}
	mock.lockUpdateStats.Lock()
	mock.calls.UpdateStats = append(mock.calls.UpdateStats, callInfo)
	mock.lockUpdateStats.Unlock()
	return mock.UpdateStatsFunc(ctx, id, stats)
}

func (mock *customerRepoMock) UpdateStatsCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Stats domain.CustomerStats
} {
	mock.lockUpdateStats.RLock()
	calls := mock.calls.UpdateStats
	mock.lockUpdateStats.RUnlock()
	return calls
}
