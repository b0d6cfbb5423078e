package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order record.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusPending, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a single order record in the ledger. Every order belongs to
// exactly one customer. Any create/update/delete of an Order is paired,
// in the same transaction, with a reconciliation of the owning customer's
// derived statistics.
type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	OrderValue      float64
	OrderDate       time.Time
	Status          OrderStatus
	ProductCategory *string
	CreatedAt       time.Time
}

// OrderUpdateParams holds partial-update fields for an order.
// nil means "do not change".
type OrderUpdateParams struct {
	OrderValue      *float64
	OrderDate       *time.Time
	Status          *OrderStatus
	ProductCategory *string // ptr("") clears the category
}
