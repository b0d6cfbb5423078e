// Package seed populates an empty database with demo CRM data. Customer
// aggregates are never written directly: orders are recorded through the
// order service so total_spend, total_orders, and last_order_date stay
// derived from the ledger.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/campaign"
	"github.com/minicrm/crm-backend/internal/service/customer"
	"github.com/minicrm/crm-backend/internal/service/order"
	"github.com/minicrm/crm-backend/pkg/ctxutil"
)

//go:generate moq -out customer_service_mock_test.go . customerService
type customerService interface {
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error)
}

//go:generate moq -out order_service_mock_test.go . orderService
type orderService interface {
	CreateOrder(ctx context.Context, input order.CreateOrderInput) (*domain.Order, error)
}

//go:generate moq -out campaign_service_mock_test.go . campaignService
type campaignService interface {
	CreateCampaign(ctx context.Context, input campaign.CreateCampaignInput) (*domain.Campaign, error)
}

// Seeder writes the demo dataset through the service layer.
type Seeder struct {
	customers customerService
	orders    orderService
	campaigns campaignService
	log       *slog.Logger
}

// New creates a Seeder.
func New(log *slog.Logger, customers customerService, orders orderService, campaigns campaignService) *Seeder {
	return &Seeder{
		customers: customers,
		orders:    orders,
		campaigns: campaigns,
		log:       log.With("service", "seed"),
	}
}

// seedActor owns the demo campaigns. It must be a demo-login email so the
// campaigns remain editable through the API.
const seedActor = "admin@crm.com"

type seedCustomer struct {
	name       string
	email      string
	phone      string
	orderCount int
	totalSpend float64
	lastOrder  time.Time
}

type seedCampaign struct {
	name            string
	messageTemplate string
	audienceType    string
}

func demoCustomers() []seedCustomer {
	return []seedCustomer{
		{
			name:       "Rahul Sharma",
			email:      "rahul@example.com",
			phone:      "+91-9876543210",
			orderCount: 5,
			totalSpend: 25000.50,
			lastOrder:  time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Priya Singh",
			email:      "priya@example.com",
			phone:      "+91-9876543211",
			orderCount: 8,
			totalSpend: 45000.75,
			lastOrder:  time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Amit Kumar",
			email:      "amit@example.com",
			phone:      "+91-9876543212",
			orderCount: 2,
			totalSpend: 8000.00,
			lastOrder:  time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Sneha Patel",
			email:      "sneha@example.com",
			phone:      "+91-9876543213",
			orderCount: 12,
			totalSpend: 67000.25,
			lastOrder:  time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func demoCampaigns() []seedCampaign {
	return []seedCampaign{
		{
			name:            "Welcome Campaign",
			messageTemplate: "Welcome {name}! Thanks for joining us! 🎉",
			audienceType:    string(domain.AudienceNew),
		},
		{
			name:            "Reactivation Campaign",
			messageTemplate: "We miss you {name}! Come back with 20% off! 💝",
			audienceType:    string(domain.AudienceInactive),
		},
	}
}

// Run seeds the demo dataset. It is idempotent: if any customers already
// exist, nothing is written.
func (s *Seeder) Run(ctx context.Context) error {
	_, total, err := s.customers.ListCustomers(ctx, domain.CustomerFilter{Limit: 1})
	if err != nil {
		return fmt.Errorf("check existing customers: %w", err)
	}
	if total > 0 {
		s.log.InfoContext(ctx, "demo data already present, skipping",
			slog.Int("customers", total),
		)
		return nil
	}

	for _, sc := range demoCustomers() {
		if err := s.seedCustomer(ctx, sc); err != nil {
			return err
		}
	}

	actorCtx := ctxutil.WithActor(ctx, seedActor)
	for _, c := range demoCampaigns() {
		created, err := s.campaigns.CreateCampaign(actorCtx, campaign.CreateCampaignInput{
			Name:            c.name,
			MessageTemplate: c.messageTemplate,
			AudienceType:    c.audienceType,
		})
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.name, err)
		}
		s.log.InfoContext(ctx, "seeded campaign",
			slog.String("name", created.Name),
			slog.Int("audience_size", created.AudienceSize),
		)
	}

	s.log.InfoContext(ctx, "demo data seeded")
	return nil
}

// seedCustomer creates one customer and backfills its order history: evenly
// sized orders a week apart, ending on the fixture's last order date.
func (s *Seeder) seedCustomer(ctx context.Context, sc seedCustomer) error {
	phone := sc.phone
	created, err := s.customers.CreateCustomer(ctx, customer.CreateCustomerInput{
		Name:  sc.name,
		Email: sc.email,
		Phone: &phone,
	})
	if err != nil {
		return fmt.Errorf("seed customer %q: %w", sc.email, err)
	}

	for _, o := range ordersFor(sc) {
		if _, err := s.orders.CreateOrder(ctx, order.CreateOrderInput{
			CustomerID: created.ID,
			OrderValue: o.OrderValue,
			OrderDate:  o.OrderDate,
		}); err != nil {
			return fmt.Errorf("seed order for %q: %w", sc.email, err)
		}
	}

	s.log.InfoContext(ctx, "seeded customer",
		slog.String("email", sc.email),
		slog.Int("orders", sc.orderCount),
	)
	return nil
}

type plannedOrder struct {
	OrderValue float64
	OrderDate  *time.Time
}

func ordersFor(sc seedCustomer) []plannedOrder {
	orders := make([]plannedOrder, 0, sc.orderCount)
	value := sc.totalSpend / float64(sc.orderCount)
	for i := 0; i < sc.orderCount; i++ {
		date := sc.lastOrder.AddDate(0, 0, -7*(sc.orderCount-1-i))
		orders = append(orders, plannedOrder{OrderValue: value, OrderDate: &date})
	}
	return orders
}
