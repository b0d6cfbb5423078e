// Package campaign implements campaign CRUD and the audience-size snapshot
// rules: the size is computed exactly once at creation and again only when
// the audience type changes. It is never refreshed by customer churn.
package campaign

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

//go:generate moq -rm -out campaign_repo_mock_test.go -fmt goimports . campaignRepo:campaignRepoMock
type campaignRepo interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CampaignUpdateParams, audienceSize *int) (*domain.Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	CountByCreator(ctx context.Context, createdBy string) (int, error)
}

//go:generate moq -rm -out audience_sizer_mock_test.go -fmt goimports . audienceSizer:audienceSizerMock
type audienceSizer interface {
	AudienceSize(ctx context.Context, t domain.AudienceType) (int, error)
}

// Service implements campaign operations.
type Service struct {
	campaigns   campaignRepo
	sizer       audienceSizer
	maxPerActor int
	log         *slog.Logger
}

// NewService creates a campaign service. maxPerActor caps how many campaigns
// one actor may own.
func NewService(log *slog.Logger, campaigns campaignRepo, sizer audienceSizer, maxPerActor int) *Service {
	return &Service{
		campaigns:   campaigns,
		sizer:       sizer,
		maxPerActor: maxPerActor,
		log:         log.With("service", "campaign"),
	}
}
