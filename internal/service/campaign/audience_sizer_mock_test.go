package campaign

import (
	"context"
	"sync"

	"github.com/minicrm/crm-backend/internal/domain"
)

var _ audienceSizer = &audienceSizerMock{}

type audienceSizerMock struct {
	AudienceSizeFunc func(ctx context.Context, t domain.AudienceType) (int, error)

	calls struct {
		AudienceSize []struct {
			Ctx context.Context
			T   domain.AudienceType
		}
	}
	lockAudienceSize sync.RWMutex
}

func (mock *audienceSizerMock) AudienceSize(ctx context.Context, t domain.AudienceType) (int, error) {
	if mock.AudienceSizeFunc == nil {
		panic("audienceSizerMock.AudienceSizeFunc: method is nil but audienceSizer.AudienceSize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.AudienceType
	}{Ctx: ctx, T: t}
	mock.lockAudienceSize.Lock()
	mock.calls.AudienceSize = append(mock.calls.AudienceSize, callInfo)
	mock.lockAudienceSize.Unlock()
	return mock.AudienceSizeFunc(ctx, t)
}

func (mock *audienceSizerMock) AudienceSizeCalls() []struct {
	Ctx context.Context
	T   domain.AudienceType
} {
	mock.lockAudienceSize.RLock()
	calls := mock.calls.AudienceSize
	mock.lockAudienceSize.RUnlock()
	return calls
}
