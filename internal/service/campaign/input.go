package campaign

import (
	"strings"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
)

// CreateCampaignInput holds the parameters for creating a campaign.
// AudienceType is the raw client string; it is normalized permissively
// (unknown values target all customers).
type CreateCampaignInput struct {
	Name            string
	MessageTemplate string
	AudienceType    string
	Status          *domain.CampaignStatus
}

// Validate checks all fields and collects all errors.
func (i CreateCampaignInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.MessageTemplate) == "" {
		errs = append(errs, domain.FieldError{Field: "message_template", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active or paused"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCampaignInput holds the parameters for amending a campaign.
// nil = don't change.
type UpdateCampaignInput struct {
	CampaignID      uuid.UUID
	Name            *string
	MessageTemplate *string
	AudienceType    *string
	Status          *domain.CampaignStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateCampaignInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "campaign_id", Message: "required"})
	}
	if i.Name == nil && i.MessageTemplate == nil && i.AudienceType == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active or paused"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
