package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minicrm/crm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCustomer creates a customer with zero aggregates.
// Returns a filled domain.Customer.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	phone := "+1-555-" + suffix[:4]
	customer := domain.Customer{
		ID:        uuid.New(),
		Name:      "Test Customer " + suffix,
		Email:     "customer-" + suffix + "@example.com",
		Phone:     &phone,
		IsActive:  true,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO customers (id, name, email, phone, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.IsActive, customer.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer insert customer: %v", err)
	}

	return customer
}

// SeedCustomerWithStats creates a customer whose aggregate columns are set
// directly, bypassing the order ledger. Useful for segmentation tests that
// only care about the aggregates.
func SeedCustomerWithStats(t *testing.T, pool *pgxpool.Pool, stats domain.CustomerStats) domain.Customer {
	t.Helper()
	ctx := context.Background()

	customer := SeedCustomer(t, pool)

	_, err := pool.Exec(ctx,
		`UPDATE customers
		 SET total_spend = $2, total_orders = $3, last_order_date = $4
		 WHERE id = $1`,
		customer.ID, stats.TotalSpend, stats.TotalOrders, stats.LastOrderDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomerWithStats update aggregates: %v", err)
	}

	customer.Stats = stats
	return customer
}

// SeedOrder inserts an order row for the customer WITHOUT touching the
// customer's aggregates. Tests exercising the reconciling order service
// should create orders through the service instead.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, customerID uuid.UUID, value float64, date time.Time) domain.Order {
	t.Helper()
	ctx := context.Background()

	order := domain.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		OrderValue: value,
		OrderDate:  date.UTC().Truncate(time.Microsecond),
		Status:     domain.OrderStatusCompleted,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO orders (id, customer_id, order_value, order_date, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		order.ID, order.CustomerID, order.OrderValue, order.OrderDate, string(order.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder insert order: %v", err)
	}

	return order
}

// SeedCampaign creates a campaign targeting all customers.
// Returns a filled domain.Campaign.
func SeedCampaign(t *testing.T, pool *pgxpool.Pool, createdBy string) domain.Campaign {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	campaign := domain.Campaign{
		ID:              uuid.New(),
		Name:            "Test Campaign " + suffix,
		MessageTemplate: "Hi {name}, check out our offer " + suffix + "!",
		AudienceType:    domain.AudienceAllCustomers,
		AudienceSize:    0,
		Status:          domain.CampaignStatusActive,
		CreatedBy:       createdBy,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO campaigns (id, name, message_template, audience_type, audience_size, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		campaign.ID, campaign.Name, campaign.MessageTemplate, string(campaign.AudienceType),
		campaign.AudienceSize, string(campaign.Status), campaign.CreatedBy, campaign.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCampaign insert campaign: %v", err)
	}

	return campaign
}
