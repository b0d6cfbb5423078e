package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an aggregate root: identity fields plus three derived
// statistics kept consistent with the customer's order records.
// TotalSpend, TotalOrders, and LastOrderDate are owned by the order
// reconciliation logic and must never be written directly outside it,
// except through the explicit administrative override operation.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
	IsActive  bool

	Stats CustomerStats
}

// CustomerStats are the derived order statistics for one customer.
// Invariant: TotalSpend equals the sum of the customer's live order values,
// TotalOrders equals their count, and LastOrderDate equals the greatest
// order_date among them (nil when the customer has no orders).
type CustomerStats struct {
	TotalSpend    float64
	TotalOrders   int
	LastOrderDate *time.Time
}

// HasOrders reports whether the customer has at least one live order.
func (s CustomerStats) HasOrders() bool {
	return s.TotalOrders > 0
}

// Validate checks internal consistency of an explicitly supplied stats
// snapshot (the administrative override path). Reconciled stats satisfy
// these rules by construction.
func (s CustomerStats) Validate() error {
	if s.TotalSpend < 0 {
		return NewInvariantViolation("total_spend must not be negative")
	}
	if s.TotalOrders < 0 {
		return NewInvariantViolation("total_orders must not be negative")
	}
	if s.TotalOrders == 0 && s.TotalSpend != 0 {
		return NewInvariantViolation("total_spend must be zero when total_orders is zero")
	}
	if s.TotalOrders == 0 && s.LastOrderDate != nil {
		return NewInvariantViolation("last_order_date must be unset when total_orders is zero")
	}
	if s.TotalOrders > 0 && s.LastOrderDate == nil {
		return NewInvariantViolation("last_order_date required when total_orders is positive")
	}
	return nil
}

// CustomerUpdateParams holds partial-update fields for a customer.
// nil means "do not change".
type CustomerUpdateParams struct {
	Name  *string
	Email *string
	Phone *string // ptr("") clears the phone
}

// OrderPolicy names what happens to a customer's orders when the customer
// is deactivated. The policy is always invoked explicitly by the
// deactivation operation, never as a side effect of the storage layer.
type OrderPolicy string

const (
	// OrderPolicyRetain keeps order rows; aggregates stay as they are.
	OrderPolicyRetain OrderPolicy = "retain"
	// OrderPolicyPurge hard-deletes the customer's orders and zeroes the
	// derived statistics in the same transaction.
	OrderPolicyPurge OrderPolicy = "purge"
)

// ParseOrderPolicy maps a config string to an OrderPolicy.
// Unknown values fall back to OrderPolicyRetain.
func ParseOrderPolicy(s string) OrderPolicy {
	if OrderPolicy(s) == OrderPolicyPurge {
		return OrderPolicyPurge
	}
	return OrderPolicyRetain
}
