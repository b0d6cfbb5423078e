package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/minicrm/crm-backend/internal/adapter/postgres"
	campaignrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/campaign"
	customerrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/customer"
	orderrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/order"
	"github.com/minicrm/crm-backend/internal/auth"
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

// tokenValidator adapts the JWT manager to the middleware's validator
// interface. Only the subject email is carried into the request context.
type tokenValidator struct {
	jwt *auth.JWTManager
}

func (v tokenValidator) ValidateToken(_ context.Context, token string) (string, error) {
	email, _, err := v.jwt.ValidateAccessToken(token)
	return email, err
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, and runs
// the server until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	customerRepo := customerrepo.New(pool)
	orderRepo := orderrepo.New(pool)
	campaignRepo := campaignrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	segmentRules := domain.SegmentRules{
		HighValueThreshold: cfg.CRM.HighValueThreshold,
		RecentWindow:       cfg.CRM.RecentWindow(),
	}

	authService := authsvc.NewService(logger, jwtManager, cfg.Auth.DemoUsers())
	customerService := customersvc.NewService(logger, customerRepo, orderRepo, txManager,
		domain.ParseOrderPolicy(cfg.CRM.DeactivationOrderPolicy))
	orderService := ordersvc.NewService(logger, orderRepo, customerRepo, txManager)
	segmentService := segmentsvc.NewService(logger, customerRepo, campaignRepo, segmentRules)
	campaignService := campaignsvc.NewService(logger, campaignRepo, segmentService, cfg.CRM.MaxCampaignsPerActor)
	messageService := messagesvc.NewService(logger)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Customers: rest.NewCustomerHandler(customerService, logger),
		Orders:    rest.NewOrderHandler(orderService, logger),
		Campaigns: rest.NewCampaignHandler(campaignService, logger),
		Analytics: rest.NewAnalyticsHandler(segmentService, logger),
		Messages:  rest.NewMessageHandler(messageService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}, limiter.Limit(cfg.Auth.LoginRatePerMinute))

	// Logger sits inside Auth so the request log carries the actor.
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokenValidator{jwt: jwtManager}),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("http server started", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
