package segment

import (
	"context"
	"fmt"
)

// Dashboard holds the headline totals over the active customer base.
// TotalOrders and TotalRevenue are sums of the customer aggregates, so they
// reflect whatever the reconciliation logic has recorded.
type Dashboard struct {
	TotalCustomers int
	TotalOrders    int
	TotalCampaigns int
	TotalRevenue   float64
	AvgSpend       float64
}

// GetDashboard computes the dashboard totals.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	customers, err := s.customers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active customers: %w", err)
	}

	campaigns, err := s.campaigns.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}

	d := &Dashboard{
		TotalCustomers: len(customers),
		TotalCampaigns: campaigns,
	}
	for _, c := range customers {
		d.TotalOrders += c.Stats.TotalOrders
		d.TotalRevenue += c.Stats.TotalSpend
	}
	if d.TotalCustomers > 0 {
		d.AvgSpend = d.TotalRevenue / float64(d.TotalCustomers)
	}

	return d, nil
}
