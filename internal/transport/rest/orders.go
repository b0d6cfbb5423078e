package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/order"
)

// orderService defines the minimal interface needed by OrderHandler.
type orderService interface {
	CreateOrder(ctx context.Context, input order.CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, input order.UpdateOrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context, input order.ListOrdersInput) ([]domain.Order, error)
}

// OrderHandler serves order REST endpoints.
type OrderHandler struct {
	svc orderService
	log *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "order")}
}

type orderCreateRequest struct {
	CustomerID      uuid.UUID  `json:"customer_id"`
	OrderValue      float64    `json:"order_value"`
	OrderDate       *time.Time `json:"order_date"`
	Status          *string    `json:"status"`
	ProductCategory *string    `json:"product_category"`
}

type orderUpdateRequest struct {
	OrderValue      *float64   `json:"order_value"`
	OrderDate       *time.Time `json:"order_date"`
	Status          *string    `json:"status"`
	ProductCategory *string    `json:"product_category"`
}

type orderResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	OrderValue      float64   `json:"order_value"`
	OrderDate       time.Time `json:"order_date"`
	Status          string    `json:"status"`
	ProductCategory *string   `json:"product_category,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		OrderValue:      o.OrderValue,
		OrderDate:       o.OrderDate,
		Status:          string(o.Status),
		ProductCategory: o.ProductCategory,
		CreatedAt:       o.CreatedAt,
	}
}

func orderStatusPtr(s *string) *domain.OrderStatus {
	if s == nil {
		return nil
	}
	status := domain.OrderStatus(*s)
	return &status
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateOrder(r.Context(), order.CreateOrderInput{
		CustomerID:      req.CustomerID,
		OrderValue:      req.OrderValue,
		OrderDate:       req.OrderDate,
		Status:          orderStatusPtr(req.Status),
		ProductCategory: req.ProductCategory,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(created))
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	o, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// List handles GET /orders?customer_id=&limit=&offset=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	input := order.ListOrdersInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("customer_id"); v != "" {
		customerID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid customer_id")
			return
		}
		input.CustomerID = &customerID
	}

	orders, err := h.svc.ListOrders(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := orderListResponse{Orders: make([]orderResponse, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&orders[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /orders/{id}.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateOrder(r.Context(), order.UpdateOrderInput{
		OrderID:         id,
		OrderValue:      req.OrderValue,
		OrderDate:       req.OrderDate,
		Status:          orderStatusPtr(req.Status),
		ProductCategory: req.ProductCategory,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(updated))
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
