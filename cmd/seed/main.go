// Command seed populates an empty database with demo CRM data: sample
// customers with full order histories and a pair of starter campaigns.
// It goes through the service layer so customer aggregates stay derived
// from the order ledger. Safe to re-run: it is a no-op once customers exist.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/minicrm/crm-backend/internal/adapter/postgres"
	campaignrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/campaign"
	customerrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/customer"
	orderrepo "github.com/minicrm/crm-backend/internal/adapter/postgres/order"
	"github.com/minicrm/crm-backend/internal/app"
	"github.com/minicrm/crm-backend/internal/app/seed"
	"github.com/minicrm/crm-backend/internal/config"
	"github.com/minicrm/crm-backend/internal/domain"
	campaignsvc "github.com/minicrm/crm-backend/internal/service/campaign"
	customersvc "github.com/minicrm/crm-backend/internal/service/customer"
	ordersvc "github.com/minicrm/crm-backend/internal/service/order"
	segmentsvc "github.com/minicrm/crm-backend/internal/service/segment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	customerRepo := customerrepo.New(pool)
	orderRepo := orderrepo.New(pool)
	campaignRepo := campaignrepo.New(pool)

	segmentRules := domain.SegmentRules{
		HighValueThreshold: cfg.CRM.HighValueThreshold,
		RecentWindow:       cfg.CRM.RecentWindow(),
	}

	customerService := customersvc.NewService(logger, customerRepo, orderRepo, txManager,
		domain.ParseOrderPolicy(cfg.CRM.DeactivationOrderPolicy))
	orderService := ordersvc.NewService(logger, orderRepo, customerRepo, txManager)
	segmentService := segmentsvc.NewService(logger, customerRepo, campaignRepo, segmentRules)
	campaignService := campaignsvc.NewService(logger, campaignRepo, segmentService, cfg.CRM.MaxCampaignsPerActor)

	seeder := seed.New(logger, customerService, orderService, campaignService)
	if err := seeder.Run(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed")
}
