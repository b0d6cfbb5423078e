package campaign

import (
	"context"
	"fmt"

	"github.com/minicrm/crm-backend/internal/domain"
)

// UpdateCampaign amends campaign fields. The audience-size snapshot is
// recomputed only when the (normalized) audience type actually changes;
// renames, template edits, and status flips leave it frozen.
func (s *Service) UpdateCampaign(ctx context.Context, input UpdateCampaignInput) (*domain.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.campaigns.GetByID(ctx, input.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	params := domain.CampaignUpdateParams{
		Name:            input.Name,
		MessageTemplate: input.MessageTemplate,
		Status:          input.Status,
	}

	var newSize *int
	if input.AudienceType != nil {
		audience := domain.NormalizeAudienceType(*input.AudienceType)
		params.AudienceType = &audience

		if audience != current.AudienceType {
			size, err := s.sizer.AudienceSize(ctx, audience)
			if err != nil {
				return nil, fmt.Errorf("size audience: %w", err)
			}
			newSize = &size
		}
	}

	updated, err := s.campaigns.Update(ctx, input.CampaignID, params, newSize)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}

	if newSize != nil {
		s.log.InfoContext(ctx, "campaign audience retargeted",
			"campaign_id", updated.ID,
			"audience_type", string(updated.AudienceType),
			"audience_size", updated.AudienceSize,
		)
	}

	return updated, nil
}
