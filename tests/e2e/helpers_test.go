//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/minicrm/crm-backend/internal/adapter/postgres"
	campaignrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/campaign"
	customerrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/customer"
	orderrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/order"
	"github.com/minicrm/crm-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/minicrm/crm-backend/internal/auth"
	"github.com/minicrm/crm-backend/internal/config"
	"github.com/minicrm/crm-backend/internal/domain"
	authsvc "github.com/minicrm/crm-backend/internal/service/auth"
	campaignsvc "github.com/minicrm/crm-backend/internal/service/campaign"
	customersvc "github.com/minicrm/crm-backend/internal/service/customer"
	messagesvc "github.com/minicrm/crm-backend/internal/service/message"
	ordersvc "github.com/minicrm/crm-backend/internal/service/order"
	segmentsvc "github.com/minicrm/crm-backend/internal/service/segment"
	"github.com/minicrm/crm-backend/internal/transport/middleware"
	"github.com/minicrm/crm-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// jwtValidator adapts the JWT manager to the middleware interface.
type jwtValidator struct{ jwt *authpkg.JWTManager }

func (v jwtValidator) ValidateToken(_ context.Context, token string) (string, error) {
	email, _, err := v.jwt.ValidateAccessToken(token)
	return email, err
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Tables are truncated so
// each test starts from an empty CRM.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	_, err := pool.Exec(context.Background(), `TRUNCATE customers, orders, campaigns CASCADE`)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	customerRepo := customerrepo.New(pool)
	orderRepo := orderrepo.New(pool)
	campaignRepo := campaignrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	segmentRules := domain.SegmentRules{
		HighValueThreshold: 30000,
		RecentWindow:       30 * 24 * time.Hour,
	}

	authService := authsvc.NewService(logger, jwtMgr, []string{"demo@example.com", "admin@crm.com"})
	customerService := customersvc.NewService(logger, customerRepo, orderRepo, txm, domain.OrderPolicyRetain)
	orderService := ordersvc.NewService(logger, orderRepo, customerRepo, txm)
	segmentService := segmentsvc.NewService(logger, customerRepo, campaignRepo, segmentRules)
	campaignService := campaignsvc.NewService(logger, campaignRepo, segmentService, 200)
	messageService := messagesvc.NewService(logger)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Customers: rest.NewCustomerHandler(customerService, logger),
		Orders:    rest.NewOrderHandler(orderService, logger),
		Campaigns: rest.NewCampaignHandler(campaignService, logger),
		Analytics: rest.NewAnalyticsHandler(segmentService, logger),
		Messages:  rest.NewMessageHandler(messageService, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	}, limiter.Limit(100))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtValidator{jwt: jwtMgr}),
		middleware.Logger(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a JSON request and decodes the JSON response into out (when
// out is non-nil). Returns the HTTP status code.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// login performs a demo login and returns the access token.
func (ts *testServer) login(t *testing.T, email string) string {
	t.Helper()

	var result struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	status := ts.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email}, &result)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "bearer", result.TokenType)
	require.NotEmpty(t, result.AccessToken)
	return result.AccessToken
}

// createCustomer creates a customer over REST and returns its ID.
func (ts *testServer) createCustomer(t *testing.T, name, email string) uuid.UUID {
	t.Helper()

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	status := ts.doJSON(t, http.MethodPost, "/customers", "", map[string]any{
		"name":  name,
		"email": email,
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

// createOrder records an order over REST and returns its ID.
func (ts *testServer) createOrder(t *testing.T, customerID uuid.UUID, value float64, date time.Time) uuid.UUID {
	t.Helper()

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	status := ts.doJSON(t, http.MethodPost, "/orders", "", map[string]any{
		"customer_id": customerID,
		"order_value": value,
		"order_date":  date.Format(time.RFC3339),
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	return created.ID
}

// customerBody fetches a customer and returns the decoded response body.
func (ts *testServer) customerBody(t *testing.T, id uuid.UUID) map[string]any {
	t.Helper()

	var body map[string]any
	status := ts.doJSON(t, http.MethodGet, fmt.Sprintf("/customers/%s", id), "", nil, &body)
	require.Equal(t, http.StatusOK, status)
	return body
}
