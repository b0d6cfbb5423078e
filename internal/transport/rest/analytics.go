package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/minicrm/crm-backend/internal/domain"
	"github.com/minicrm/crm-backend/internal/service/segment"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	GetDashboard(ctx context.Context) (*segment.Dashboard, error)
	CustomerSegments(ctx context.Context, window segment.Window) (map[domain.Segment]int, error)
}

// AnalyticsHandler serves rollup analytics endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type dashboardResponse struct {
	TotalCustomers int     `json:"total_customers"`
	TotalOrders    int     `json:"total_orders"`
	TotalCampaigns int     `json:"total_campaigns"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgSpend       float64 `json:"avg_spend"`
}

type segmentsResponse struct {
	Segments map[string]int `json:"segments"`
}

// Dashboard handles GET /analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalCustomers: d.TotalCustomers,
		TotalOrders:    d.TotalOrders,
		TotalCampaigns: d.TotalCampaigns,
		TotalRevenue:   d.TotalRevenue,
		AvgSpend:       d.AvgSpend,
	})
}

// CustomerSegments handles GET /analytics/customer-segments. The optional
// window query parameter switches the recently-active count to the strict
// trailing-window predicate.
func (h *AnalyticsHandler) CustomerSegments(w http.ResponseWriter, r *http.Request) {
	window := segment.WindowAll
	switch v := r.URL.Query().Get("window"); v {
	case "", string(segment.WindowAll):
	case string(segment.WindowStrict):
		window = segment.WindowStrict
	default:
		writeError(w, http.StatusBadRequest, "invalid window")
		return
	}

	counts, err := h.svc.CustomerSegments(r.Context(), window)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := segmentsResponse{Segments: make(map[string]int, len(counts))}
	for seg, n := range counts {
		resp.Segments[string(seg)] = n
	}

	writeJSON(w, http.StatusOK, resp)
}
