package rest

import (
	"net/http"

	"github.com/minicrm/crm-backend/internal/transport/middleware"
)

// Handlers collects the endpoint handlers the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Customers *CustomerHandler
	Orders    *OrderHandler
	Campaigns *CampaignHandler
	Analytics *AnalyticsHandler
	Messages  *MessageHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP route table. loginLimit wraps only the login
// route; the global middleware chain is applied by the caller.
func NewRouter(h Handlers, loginLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /auth/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	mux.HandleFunc("GET /customers", h.Customers.List)
	mux.HandleFunc("POST /customers", h.Customers.Create)
	mux.HandleFunc("GET /customers/{id}", h.Customers.Get)
	mux.HandleFunc("PUT /customers/{id}", h.Customers.Update)
	mux.HandleFunc("DELETE /customers/{id}", h.Customers.Deactivate)
	mux.HandleFunc("PUT /customers/{id}/stats", h.Customers.OverrideStats)
	mux.HandleFunc("POST /customers/{id}/stats/recompute", h.Customers.RecomputeStats)

	mux.HandleFunc("GET /orders", h.Orders.List)
	mux.HandleFunc("POST /orders", h.Orders.Create)
	mux.HandleFunc("GET /orders/{id}", h.Orders.Get)
	mux.HandleFunc("PUT /orders/{id}", h.Orders.Update)
	mux.HandleFunc("DELETE /orders/{id}", h.Orders.Delete)

	mux.HandleFunc("GET /campaigns", h.Campaigns.List)
	mux.HandleFunc("POST /campaigns", h.Campaigns.Create)
	mux.HandleFunc("GET /campaigns/{id}", h.Campaigns.Get)
	mux.HandleFunc("PUT /campaigns/{id}", h.Campaigns.Update)
	mux.HandleFunc("DELETE /campaigns/{id}", h.Campaigns.Delete)
	mux.HandleFunc("GET /campaigns/{id}/delivery", h.Campaigns.Delivery)

	mux.HandleFunc("GET /analytics/dashboard", h.Analytics.Dashboard)
	mux.HandleFunc("GET /analytics/customer-segments", h.Analytics.CustomerSegments)

	mux.HandleFunc("GET /ai/generate-message", h.Messages.Generate)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}
