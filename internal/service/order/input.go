package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// CreateOrderInput holds the parameters for recording an order.
type CreateOrderInput struct {
	CustomerID      uuid.UUID
	OrderValue      float64
	OrderDate       *time.Time // nil = now
	Status          *domain.OrderStatus
	ProductCategory *string
}

// Validate checks all fields and collects all errors.
func (i CreateOrderInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.OrderValue < 0 {
		errs = append(errs, domain.FieldError{Field: "order_value", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be completed, pending, or cancelled"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateOrderInput holds the parameters for amending an order.
// nil = don't change.
type UpdateOrderInput struct {
	OrderID         uuid.UUID
	OrderValue      *float64
	OrderDate       *time.Time
	Status          *domain.OrderStatus
	ProductCategory *string
}

// Validate checks all fields and collects all errors.
func (i UpdateOrderInput) Validate() error {
	var errs []domain.FieldError

	if i.OrderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "order_id", Message: "required"})
	}
	if i.OrderValue == nil && i.OrderDate == nil && i.Status == nil && i.ProductCategory == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.OrderValue != nil && *i.OrderValue < 0 {
		errs = append(errs, domain.FieldError{Field: "order_value", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be completed, pending, or cancelled"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListOrdersInput holds the parameters for listing orders.
type ListOrdersInput struct {
	CustomerID *uuid.UUID // nil = all customers
	Limit      int
	Offset     int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// normalize applies defaults and clamps values.
func (i *ListOrdersInput) normalize() {
	if i.Limit <= 0 {
		i.Limit = defaultListLimit
	}
	if i.Limit > maxListLimit {
		i.Limit = maxListLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}
