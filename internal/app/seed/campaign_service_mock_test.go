package seed

import (
	"context"
	"sync"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/campaign"
)

var _ campaignService = &campaignServiceMock{}

type campaignServiceMock struct {
	CreateCampaignFunc func(ctx context.Context, input campaign.CreateCampaignInput) (*domain.Campaign, error)

	calls struct {
		CreateCampaign []struct {
			Ctx   context.Context
			Input campaign.CreateCampaignInput
		}
	}
	lockCreateCampaign sync.RWMutex
}

func (mock *campaignServiceMock) CreateCampaign(ctx context.Context, input campaign.CreateCampaignInput) (*domain.Campaign, error) {
	if mock.CreateCampaignFunc == nil {
		panic("campaignServiceMock.CreateCampaignFunc: method is nil but campaignService.CreateCampaign was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input campaign.CreateCampaignInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCampaign.Lock()
	mock.calls.CreateCampaign = append(mock.calls.CreateCampaign, callInfo)
	mock.lockCreateCampaign.Unlock()
	return mock.CreateCampaignFunc(ctx, input)
}

func (mock *campaignServiceMock) CreateCampaignCalls() []struct {
	Ctx   context.Context
	Input campaign.CreateCampaignInput
} {
	mock.lockCreateCampaign.RLock()
	calls := mock.calls.CreateCampaign
	mock.lockCreateCampaign.RUnlock()
	return calls
}
