package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// GetCampaign returns one campaign by id.
func (s *Service) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns returns all campaigns, newest first.
func (s *Service) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// DeleteCampaign removes a campaign. Only the definition row goes away;
// nothing else references it.
func (s *Service) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if err := s.campaigns.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign deleted", "campaign_id", id)
	return nil
}

// EstimateDelivery derives synthetic delivery stats from the campaign's
// frozen audience size.
func (s *Service) EstimateDelivery(ctx context.Context, id uuid.UUID) (*domain.DeliveryStats, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	stats := c.EstimateDelivery()
	return &stats, nil
}
