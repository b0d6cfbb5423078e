package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/customer"
)

// customerService defines the minimal interface needed by CustomerHandler.
type customerService interface {
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error)
	UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) (*domain.Customer, error)
	DeactivateCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	OverrideStats(ctx context.Context, input customer.OverrideStatsInput) (*domain.Customer, error)
	RecomputeStats(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// CustomerHandler serves customer REST endpoints.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type customerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type customerUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type customerStatsRequest struct {
	TotalSpend    float64    `json:"total_spend"`
	TotalOrders   int        `json:"total_orders"`
	LastOrderDate *time.Time `json:"last_order_date"`
}

type customerResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone,omitempty"`
	TotalSpend    float64    `json:"total_spend"`
	TotalOrders   int        `json:"total_orders"`
	LastOrderDate *time.Time `json:"last_order_date"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

type customerListResponse struct {
	Customers []customerResponse `json:"customers"`
	Total     int                `json:"total"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TotalSpend:    c.Stats.TotalSpend,
		TotalOrders:   c.Stats.TotalOrders,
		LastOrderDate: c.Stats.LastOrderDate,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
	}
}

// List handles GET /customers?search=&is_active=&min_spend=&sort_by=&sort_order=&limit=&offset=.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.CustomerFilter{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}
	if s := q.Get("search"); s != "" {
		f.Search = &s
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid is_active")
			return
		}
		f.IsActive = &active
	}
	if v := q.Get("min_spend"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid min_spend")
			return
		}
		f.MinSpend = &min
	}

	customers, total, err := h.svc.ListCustomers(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := customerListResponse{
		Customers: make([]customerResponse, 0, len(customers)),
		Total:     total,
	}
	for i := range customers {
		resp.Customers = append(resp.Customers, toCustomerResponse(&customers[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCustomer(r.Context(), customer.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerResponse(created))
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Update handles PUT /customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req customerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCustomer(r.Context(), customer.UpdateCustomerInput{
		CustomerID: id,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(updated))
}

// Deactivate handles DELETE /customers/{id} (soft delete).
func (h *CustomerHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deactivated, err := h.svc.DeactivateCustomer(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(deactivated))
}

// OverrideStats handles PUT /customers/{id}/stats.
func (h *CustomerHandler) OverrideStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req customerStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.OverrideStats(r.Context(), customer.OverrideStatsInput{
		CustomerID: id,
		Stats: domain.CustomerStats{
			TotalSpend:    req.TotalSpend,
			TotalOrders:   req.TotalOrders,
			LastOrderDate: req.LastOrderDate,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(updated))
}

// RecomputeStats handles POST /customers/{id}/stats/recompute.
func (h *CustomerHandler) RecomputeStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.RecomputeStats(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(updated))
}
