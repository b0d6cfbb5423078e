package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
)

// IsValid reports whether the status is one of the known values.
func (s CampaignStatus) IsValid() bool {
	return s == CampaignStatusActive || s == CampaignStatusPaused
}

// AudienceType is a named targeting rule for a campaign.
type AudienceType string

const (
	AudienceAllCustomers AudienceType = "All Customers"
	AudienceHighValue    AudienceType = "High Value Customers"
	AudienceInactive     AudienceType = "Inactive Customers"
	AudienceNew          AudienceType = "New Customers"
)

// NormalizeAudienceType maps an arbitrary string to a known AudienceType.
// Unrecognized values fall back to AudienceAllCustomers so that campaign
// creation stays permissive.
func NormalizeAudienceType(s string) AudienceType {
	switch AudienceType(s) {
	case AudienceHighValue, AudienceInactive, AudienceNew, AudienceAllCustomers:
		return AudienceType(s)
	}
	return AudienceAllCustomers
}

// Campaign is a stored campaign definition. AudienceSize is a point-in-time
// snapshot taken when the campaign was created or its audience type last
// changed; it is never recomputed when customer aggregates move afterwards.
type Campaign struct {
	ID              uuid.UUID
	Name            string
	MessageTemplate string
	AudienceType    AudienceType
	AudienceSize    int
	Status          CampaignStatus
	CreatedBy       string
	CreatedAt       time.Time
}

// CampaignUpdateParams holds partial-update fields for a campaign.
// nil means "do not change".
type CampaignUpdateParams struct {
	Name            *string
	MessageTemplate *string
	AudienceType    *AudienceType
	Status          *CampaignStatus
}

// DeliveryStats are synthetic delivery percentages derived from the frozen
// audience size. They are estimates for dashboards, not measured events.
type DeliveryStats struct {
	AudienceSize int
	Delivered    int
	Opened       int
	Clicked      int
}

// EstimateDelivery derives synthetic delivery stats from the campaign's
// audience-size snapshot: 90% delivered, 25% opened, 5% clicked.
func (c Campaign) EstimateDelivery() DeliveryStats {
	return DeliveryStats{
		AudienceSize: c.AudienceSize,
		Delivered:    c.AudienceSize * 90 / 100,
		Opened:       c.AudienceSize * 25 / 100,
		Clicked:      c.AudienceSize * 5 / 100,
	}
}
