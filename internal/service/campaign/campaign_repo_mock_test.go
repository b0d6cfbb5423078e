package campaign

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

var _ campaignRepo = &campaignRepoMock{}

type campaignRepoMock struct {
	CreateFunc         func(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, params domain.CampaignUpdateParams, audienceSize *int) (*domain.Campaign, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListFunc           func(ctx context.Context) ([]domain.Campaign, error)
	CountByCreatorFunc func(ctx context.Context, createdBy string) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Campaign
		}
		Update []struct {
			Ctx          context.Context
			ID           uuid.UUID
			Params       domain.CampaignUpdateParams
			AudienceSize *int
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		CountByCreator []struct {
			Ctx       context.Context
			CreatedBy string
		}
	}
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockCountByCreator sync.RWMutex
}

func (mock *campaignRepoMock) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	if mock.CreateFunc == nil {
		panic("campaignRepoMock.CreateFunc: method is nil but campaignRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Campaign
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *campaignRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Campaign
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *campaignRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.CampaignUpdateParams, audienceSize *int) (*domain.Campaign, error) {
	if mock.UpdateFunc == nil {
		panic("campaignRepoMock.UpdateFunc: method is nil but campaignRepo.Update was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           uuid.UUID
		Params       domain.CampaignUpdateParams
		AudienceSize *int
	}{Ctx: ctx, ID: id, Params: params, AudienceSize: audienceSize}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, audienceSize)
}

func (mock *campaignRepoMock) UpdateCalls() []struct {
	Ctx          context.Context
	ID           uuid.UUID
	Params       domain.CampaignUpdateParams
	AudienceSize *int
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *campaignRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("campaignRepoMock.DeleteFunc: method is nil but campaignRepo.Delete was just called")
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

func (mock *campaignRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *campaignRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	if mock.GetByIDFunc == nil {
		panic("campaignRepoMock.GetByIDFunc: method is nil but campaignRepo.GetByID was just called")
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

func (mock *campaignRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *campaignRepoMock) List(ctx context.Context) ([]domain.Campaign, error) {
	if mock.ListFunc == nil {
		panic("campaignRepoMock.ListFunc: method is nil but campaignRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *campaignRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *campaignRepoMock) CountByCreator(ctx context.Context, createdBy string) (int, error) {
	if mock.CountByCreatorFunc == nil {
		panic("campaignRepoMock.CountByCreatorFunc: method is nil but campaignRepo.CountByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatedBy string
	}{Ctx: ctx, CreatedBy: createdBy}
	mock.lockCountByCreator.Lock()
	mock.calls.CountByCreator = append(mock.calls.CountByCreator, callInfo)
	mock.lockCountByCreator.Unlock()
	return mock.CountByCreatorFunc(ctx, createdBy)
}

func (mock *campaignRepoMock) CountByCreatorCalls() []struct {
	Ctx       context.Context
	CreatedBy string
} {
	mock.lockCountByCreator.RLock()
	calls := mock.calls.CountByCreator
	mock.lockCountByCreator.RUnlock()
	return calls
}
