package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/pkg/ctxutil"
)

// CreateCampaign creates a campaign owned by the authenticated actor. The
// audience size is counted here, once, and stored as a frozen snapshot.
func (s *Service) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*domain.Campaign, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	owned, err := s.campaigns.CountByCreator(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}
	if owned >= s.maxPerActor {
		return nil, domain.NewValidationError("created_by", "campaign limit reached")
	}

	audience := domain.NormalizeAudienceType(input.AudienceType)
	size, err := s.sizer.AudienceSize(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("size audience: %w", err)
	}

	status := domain.CampaignStatusActive
	if input.Status != nil {
		status = *input.Status
	}

	created, err := s.campaigns.Create(ctx, &domain.Campaign{
		ID:              uuid.New(),
		Name:            input.Name,
		MessageTemplate: input.MessageTemplate,
		AudienceType:    audience,
		AudienceSize:    size,
		Status:          status,
		CreatedBy:       actor,
	})
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign created",
		"campaign_id", created.ID,
		"audience_type", string(created.AudienceType),
		"audience_size", created.AudienceSize,
		"created_by", actor,
	)

	return created, nil
}
