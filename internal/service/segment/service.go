// Package segment computes audience sizes, segment counts, and dashboard
// totals from the customer aggregates. All classification happens in memory
// over the active customer set; nothing here writes to storage.
package segment

import (
	"context"
	"log/slog"

	"github.com/minicrm/crm-backend/internal/domain"
)

//go:generate moq -rm -out customer_repo_mock_test.go -fmt goimports . customerRepo:customerRepoMock
type customerRepo interface {
	ListActive(ctx context.Context) ([]domain.Customer, error)
}

//go:generate moq -rm -out campaign_repo_mock_test.go -fmt goimports . campaignRepo:campaignRepoMock
type campaignRepo interface {
	Count(ctx context.Context) (int, error)
}

// Service answers segmentation and analytics queries.
type Service struct {
	customers customerRepo
	campaigns campaignRepo
	rules     domain.SegmentRules
	log       *slog.Logger
}

// NewService creates a segment service with the given classification rules.
func NewService(log *slog.Logger, customers customerRepo, campaigns campaignRepo, rules domain.SegmentRules) *Service {
	return &Service{
		customers: customers,
		campaigns: campaigns,
		rules:     rules,
		log:       log.With("service", "segment"),
	}
}
