package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/campaign"
)

// campaignService defines the minimal interface needed by CampaignHandler.
type campaignService interface {
	CreateCampaign(ctx context.Context, input campaign.CreateCampaignInput) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, input campaign.UpdateCampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	EstimateDelivery(ctx context.Context, id uuid.UUID) (*domain.DeliveryStats, error)
}

// CampaignHandler serves campaign REST endpoints.
type CampaignHandler struct {
	svc campaignService
	log *slog.Logger
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler(svc campaignService, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{svc: svc, log: logger.With("handler", "campaign")}
}

type campaignCreateRequest struct {
	Name            string  `json:"name"`
	MessageTemplate string  `json:"message_template"`
	AudienceType    string  `json:"audience_type"`
	Status          *string `json:"status"`
}

type campaignUpdateRequest struct {
	Name            *string `json:"name"`
	MessageTemplate *string `json:"message_template"`
	AudienceType    *string `json:"audience_type"`
	Status          *string `json:"status"`
}

type campaignResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MessageTemplate string    `json:"message_template"`
	AudienceType    string    `json:"audience_type"`
	AudienceSize    int       `json:"audience_size"`
	Status          string    `json:"status"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type campaignListResponse struct {
	Campaigns []campaignResponse `json:"campaigns"`
}

type deliveryResponse struct {
	AudienceSize int `json:"audience_size"`
	Delivered    int `json:"delivered"`
	Opened       int `json:"opened"`
	Clicked      int `json:"clicked"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		Name:            c.Name,
		MessageTemplate: c.MessageTemplate,
		AudienceType:    string(c.AudienceType),
		AudienceSize:    c.AudienceSize,
		Status:          string(c.Status),
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
	}
}

func campaignStatusPtr(s *string) *domain.CampaignStatus {
	if s == nil {
		return nil
	}
	status := domain.CampaignStatus(*s)
	return &status
}

// Create handles POST /campaigns.
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCampaign(r.Context(), campaign.CreateCampaignInput{
		Name:            req.Name,
		MessageTemplate: req.MessageTemplate,
		AudienceType:    req.AudienceType,
		Status:          campaignStatusPtr(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCampaignResponse(created))
}

// Get handles GET /campaigns/{id}.
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// List handles GET /campaigns.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := campaignListResponse{Campaigns: make([]campaignResponse, 0, len(campaigns))}
	for i := range campaigns {
		resp.Campaigns = append(resp.Campaigns, toCampaignResponse(&campaigns[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /campaigns/{id}.
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req campaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCampaign(r.Context(), campaign.UpdateCampaignInput{
		CampaignID:      id,
		Name:            req.Name,
		MessageTemplate: req.MessageTemplate,
		AudienceType:    req.AudienceType,
		Status:          campaignStatusPtr(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCampaignResponse(updated))
}

// Delete handles DELETE /campaigns/{id}.
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCampaign(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Delivery handles GET /campaigns/{id}/delivery.
func (h *CampaignHandler) Delivery(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.EstimateDelivery(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deliveryResponse{
		AudienceSize: stats.AudienceSize,
		Delivered:    stats.Delivered,
		Opened:       stats.Opened,
		Clicked:      stats.Clicked,
	})
}
