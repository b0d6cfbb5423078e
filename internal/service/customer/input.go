package customer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// CreateCustomerInput holds the parameters for registering a customer.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// Validate checks all fields and collects all errors.
func (i CreateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCustomerInput holds the parameters for amending a customer profile.
// nil = don't change.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.Name == nil && i.Email == nil && i.Phone == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Email != nil && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OverrideStatsInput holds an administrative aggregate override.
type OverrideStatsInput struct {
	CustomerID uuid.UUID
	Stats      domain.CustomerStats
}

// Validate checks the id; the stats snapshot itself is validated against the
// aggregate invariants by domain.CustomerStats.Validate.
func (i OverrideStatsInput) Validate() error {
	if i.CustomerID == uuid.Nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "customer_id", Message: "required"},
		}}
	}
	return nil
}
